package fingerprint

import "testing"

func TestCacheLookupMissThenHit(t *testing.T) {
	c := NewCache(BLAKE3)
	data := []byte("nested root bytes")

	key, rendered, ok := c.Lookup(data)
	if ok {
		t.Fatalf("expected miss on empty cache, got hit with %q", rendered)
	}
	c.Store(key, []byte(`{"a":1}`))

	_, rendered, ok = c.Lookup(data)
	if !ok {
		t.Fatalf("expected hit after Store")
	}
	if string(rendered) != `{"a":1}` {
		t.Fatalf("got %q", rendered)
	}
	if c.Hits != 1 || c.Misses != 1 {
		t.Fatalf("got hits=%d misses=%d", c.Hits, c.Misses)
	}
}

func TestCacheDistinctDataDistinctKeys(t *testing.T) {
	for _, algo := range []Algorithm{BLAKE3, XXHash64, Murmur3Combined} {
		c := NewCache(algo)
		k1, _, _ := c.Lookup([]byte("one"))
		k2, _, _ := c.Lookup([]byte("two"))
		if k1 == k2 {
			t.Fatalf("%s: expected distinct fingerprints for distinct input", algo)
		}
	}
}

func TestCacheReset(t *testing.T) {
	c := NewCache(BLAKE3)
	key, _, _ := c.Lookup([]byte("x"))
	c.Store(key, []byte("y"))
	c.Reset()
	if _, _, ok := c.Lookup([]byte("x")); ok {
		t.Fatalf("expected miss after Reset")
	}
	if c.Hits != 0 || c.Misses != 1 {
		t.Fatalf("got hits=%d misses=%d", c.Hits, c.Misses)
	}
}
