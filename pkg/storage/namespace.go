package storage

import "context"

// Namespaced prefixes every key, scoping engine keys to one profile when
// the underlying store is shared.
type Namespaced struct {
	inner  KeyValue
	prefix string
}

func WithPrefix(inner KeyValue, prefix string) *Namespaced {
	return &Namespaced{inner: inner, prefix: prefix}
}

func (n *Namespaced) Get(ctx context.Context, key string) (string, bool, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *Namespaced) Set(ctx context.Context, key, value string) error {
	return n.inner.Set(ctx, n.prefix+key, value)
}

func (n *Namespaced) Remove(ctx context.Context, key string) error {
	return n.inner.Remove(ctx, n.prefix+key)
}
