package main

import "testing"

func TestSelfCheck(t *testing.T) {
	for _, seed := range []uint64{1, 2, 99} {
		if err := selfCheck(100, seed); err != nil {
			t.Errorf("seed %d: %v", seed, err)
		}
	}
}
