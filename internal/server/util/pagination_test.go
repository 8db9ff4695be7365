package util

import "testing"

func TestPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{
			name:       "defaults",
			page:       0,
			limit:      0,
			wantPage:   1,
			wantLimit:  25,
			wantOffset: 0,
		},
		{
			name:       "negative page",
			page:       -3,
			limit:      10,
			wantPage:   1,
			wantLimit:  10,
			wantOffset: 0,
		},
		{
			name:       "limit capped at 100",
			page:       2,
			limit:      500,
			wantPage:   2,
			wantLimit:  100,
			wantOffset: 100,
		},
		{
			name:       "third page",
			page:       3,
			limit:      20,
			wantPage:   3,
			wantLimit:  20,
			wantOffset: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, offset := Pagination(tt.page, tt.limit)
			if page != tt.wantPage || limit != tt.wantLimit || offset != tt.wantOffset {
				t.Fatalf("got (%d, %d, %d), want (%d, %d, %d)",
					page, limit, offset, tt.wantPage, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		limit          int
		total          int64
		wantTotalPages int64
	}{
		{
			name:           "exact multiple",
			page:           1,
			limit:          25,
			total:          50,
			wantTotalPages: 2,
		},
		{
			name:           "partial last page",
			page:           1,
			limit:          25,
			total:          51,
			wantTotalPages: 3,
		},
		{
			name:           "empty",
			page:           1,
			limit:          25,
			total:          0,
			wantTotalPages: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewPageMeta(tt.page, tt.limit, tt.total)
			if meta.TotalPages != tt.wantTotalPages {
				t.Fatalf("unexpected total pages: got %d, want %d", meta.TotalPages, tt.wantTotalPages)
			}
			if meta.Total != tt.total || meta.Page != tt.page || meta.Limit != tt.limit {
				t.Fatalf("unexpected meta: %+v", meta)
			}
		})
	}
}
