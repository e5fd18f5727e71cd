package life

import "testing"

func TestRuleTablesEncodeB3S23(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := uint8(0)
		if n == 2 || n == 3 {
			wantAlive = 1
		}
		wantDead := uint8(0)
		if n == 3 {
			wantDead = 1
		}
		if nextFromAlive[n] != wantAlive {
			t.Errorf("live cell with %d neighbors: next = %d, want %d", n, nextFromAlive[n], wantAlive)
		}
		if nextFromDead[n] != wantDead {
			t.Errorf("dead cell with %d neighbors: next = %d, want %d", n, nextFromDead[n], wantDead)
		}
	}
}
