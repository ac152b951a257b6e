// Implements the PendingQueue, which holds discovered primes that are not
// yet active as moduli. A prime is enqueued the moment it is found and
// dequeued when the scan reaches its square.

package sieve

// PendingActivation pairs a discovered prime with the candidate value at
// which it becomes an active modulus (always the prime squared).
type PendingActivation struct {
	Prime  uint64
	Square uint64
}

// PendingQueue is a FIFO queue of pending activations. Because primes are
// discovered in increasing order and squaring is monotonic, the queue is
// always sorted ascending by Square.
type PendingQueue struct {
	queue []PendingActivation
}

// Enqueue adds an activation to the back of the queue.
func (pq *PendingQueue) Enqueue(prime, square uint64) {
	pq.queue = append(pq.queue, PendingActivation{Prime: prime, Square: square})
}

// Peek returns the front activation without removing it, or nil when the
// queue is empty.
func (pq *PendingQueue) Peek() *PendingActivation {
	if len(pq.queue) == 0 {
		return nil
	}
	return &pq.queue[0]
}

// Dequeue removes and returns the front activation. It must not be called
// on an empty queue.
func (pq *PendingQueue) Dequeue() PendingActivation {
	head := pq.queue[0]
	pq.queue = pq.queue[1:]
	return head
}

// Len returns the number of pending activations.
func (pq *PendingQueue) Len() int {
	return len(pq.queue)
}
