package pagination

import "testing"

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		n, size, want int
	}{
		{0, 30, 0},
		{1, 30, 1},
		{30, 30, 1},
		{31, 30, 2},
		{90, 30, 3},
		{91, 30, 4},
		{10, 3, 4},
	}
	for _, tc := range cases {
		p := New(intRange(tc.n), tc.size)
		if got := p.TotalPages(); got != tc.want {
			t.Errorf("TotalPages(n=%d, size=%d) = %d, want %d", tc.n, tc.size, got, tc.want)
		}
	}
}

func TestPagesReconstructList(t *testing.T) {
	items := intRange(47)
	p := New(items, 10)

	var rebuilt []int
	for page := 1; page <= p.TotalPages(); page++ {
		p.SetPage(page)
		rebuilt = append(rebuilt, p.Items()...)
	}

	if len(rebuilt) != len(items) {
		t.Fatalf("rebuilt %d items, want %d", len(rebuilt), len(items))
	}
	for i := range items {
		if rebuilt[i] != items[i] {
			t.Fatalf("rebuilt[%d] = %d, want %d", i, rebuilt[i], items[i])
		}
	}
}

func TestEmptyList(t *testing.T) {
	p := New([]int{}, 30)
	if p.TotalPages() != 0 {
		t.Errorf("TotalPages = %d, want 0", p.TotalPages())
	}
	if len(p.Items()) != 0 {
		t.Errorf("Items() = %v, want empty", p.Items())
	}
}

func TestChangingPageSizeResetsPage(t *testing.T) {
	p := New(intRange(100), 10)
	p.SetPage(9)
	if p.Page() != 9 {
		t.Fatalf("Page = %d, want 9", p.Page())
	}

	// New size leaves fewer pages than the one we were on.
	p.SetPageSize(50)
	if p.Page() != 1 {
		t.Errorf("Page after SetPageSize = %d, want 1", p.Page())
	}
	if p.TotalPages() != 2 {
		t.Errorf("TotalPages = %d, want 2", p.TotalPages())
	}
}

func TestChangingItemsResetsPage(t *testing.T) {
	p := New(intRange(100), 10)
	p.SetPage(5)
	p.SetItems(intRange(7))
	if p.Page() != 1 {
		t.Errorf("Page after SetItems = %d, want 1", p.Page())
	}
	if got := len(p.Items()); got != 7 {
		t.Errorf("len(Items) = %d, want 7", got)
	}
}

func TestSetPageClamps(t *testing.T) {
	p := New(intRange(25), 10)
	p.SetPage(99)
	if p.Page() != 3 {
		t.Errorf("Page = %d, want 3", p.Page())
	}
	p.SetPage(-1)
	if p.Page() != 1 {
		t.Errorf("Page = %d, want 1", p.Page())
	}
}
