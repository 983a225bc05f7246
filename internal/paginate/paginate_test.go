package paginate

import "testing"

func TestTotalPages(t *testing.T) {
	cases := []struct {
		count, size, want int
	}{
		{0, 4, 0},
		{1, 4, 1},
		{4, 4, 1},
		{5, 4, 2},
		{9, 4, 3},
		{3, 0, 0},
	}
	for i, tc := range cases {
		if got := TotalPages(tc.count, tc.size); got != tc.want {
			t.Fatalf("case %d got %d want %d", i, got, tc.want)
		}
	}
}

func TestPaginateBounds(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	p := Paginate(items, 2, 1)
	if len(p.Items) != 2 || p.Items[0] != 1 || p.Items[1] != 2 {
		t.Fatalf("unexpected first page %v", p.Items)
	}
	if p.CanPrev {
		t.Fatalf("CanPrev must be false on page 1")
	}
	if !p.CanNext {
		t.Fatalf("CanNext must be true before the last page")
	}

	last := Paginate(items, 2, 3)
	if len(last.Items) != 1 || last.Items[0] != 5 {
		t.Fatalf("unexpected last page %v", last.Items)
	}
	if last.CanNext {
		t.Fatalf("CanNext must be false on the last page")
	}
	if !last.CanPrev {
		t.Fatalf("CanPrev must be true past page 1")
	}

	beyond := Paginate(items, 2, 9)
	if len(beyond.Items) != 0 {
		t.Fatalf("out-of-range page must be empty, got %v", beyond.Items)
	}
}

func TestPaginateEmpty(t *testing.T) {
	p := Paginate([]string{}, 4, 1)
	if p.TotalPages != 0 || p.CanPrev || p.CanNext || len(p.Items) != 0 {
		t.Fatalf("unexpected page for empty input: %+v", p)
	}
}

// Concatenating all pages must reproduce the input with no gaps or overlaps.
func TestPaginatePartition(t *testing.T) {
	for _, size := range []int{1, 2, 3, 4, 7} {
		items := make([]int, 9)
		for i := range items {
			items[i] = i
		}

		var joined []int
		total := TotalPages(len(items), size)
		for page := 1; page <= total; page++ {
			p := Paginate(items, size, page)
			if len(p.Items) > size {
				t.Fatalf("size %d page %d too large: %d items", size, page, len(p.Items))
			}
			joined = append(joined, p.Items...)
		}
		if len(joined) != len(items) {
			t.Fatalf("size %d partition lost items: %v", size, joined)
		}
		for i := range joined {
			if joined[i] != items[i] {
				t.Fatalf("size %d partition out of order at %d", size, i)
			}
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		page, total, want int
	}{
		{1, 3, 1},
		{3, 3, 3},
		{4, 3, 3},
		{2, 1, 1},
		{2, 0, 1},
		{0, 5, 1},
	}
	for i, tc := range cases {
		if got := Clamp(tc.page, tc.total); got != tc.want {
			t.Fatalf("case %d got %d want %d", i, got, tc.want)
		}
	}
}
