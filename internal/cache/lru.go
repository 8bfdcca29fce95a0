package cache

// lruNode links one key into an lruList.
type lruNode[K comparable] struct {
	key        K
	prev, next *lruNode[K]
}

// lruList orders keys by use, most recent first. It is a ring around a
// sentinel, so no operation needs nil checks. Callers synchronize.
type lruList[K comparable] struct {
	root lruNode[K]
	n    int
}

func newLRUList[K comparable]() *lruList[K] {
	l := &lruList[K]{}
	l.root.prev, l.root.next = &l.root, &l.root
	return l
}

// Len returns the number of keys.
func (l *lruList[K]) Len() int { return l.n }

func (l *lruList[K]) insertAfter(at, node *lruNode[K]) {
	node.prev, node.next = at, at.next
	at.next.prev = node
	at.next = node
}

func (l *lruList[K]) detach(node *lruNode[K]) {
	node.prev.next = node.next
	node.next.prev = node.prev
	node.prev, node.next = nil, nil
}

// PushFront adds key as the most recently used and returns its node.
func (l *lruList[K]) PushFront(key K) *lruNode[K] {
	node := &lruNode[K]{key: key}
	l.insertAfter(&l.root, node)
	l.n++
	return node
}

// MoveToFront marks node as the most recently used.
func (l *lruList[K]) MoveToFront(node *lruNode[K]) {
	if node == nil || l.root.next == node {
		return
	}
	l.detach(node)
	l.insertAfter(&l.root, node)
}

// Remove unlinks node.
func (l *lruList[K]) Remove(node *lruNode[K]) {
	if node == nil || node.next == nil {
		return
	}
	l.detach(node)
	l.n--
}

// RemoveOldest unlinks the least recently used key and returns it.
func (l *lruList[K]) RemoveOldest() (K, bool) {
	if l.n == 0 {
		var zero K
		return zero, false
	}
	key := l.root.prev.key
	l.Remove(l.root.prev)
	return key, true
}

// Clear drops every key.
func (l *lruList[K]) Clear() {
	l.root.prev, l.root.next = &l.root, &l.root
	l.n = 0
}
