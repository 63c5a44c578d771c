package pagination

import "testing"

func TestClampPageSize(t *testing.T) {
	t.Parallel()

	cfg := PageSizeConfig{Default: 10, Max: 50}
	testCases := []struct {
		name  string
		value int32
		want  int
	}{
		{name: "zero uses default", value: 0, want: 10},
		{name: "negative uses default", value: -3, want: 10},
		{name: "in range passes through", value: 25, want: 25},
		{name: "above max clamps", value: 500, want: 50},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampPageSize(tc.value, cfg); got != tc.want {
				t.Fatalf("ClampPageSize(%d) = %d, want %d", tc.value, got, tc.want)
			}
		})
	}
}

func TestClampPageSizeWithoutDefaults(t *testing.T) {
	t.Parallel()

	if got := ClampPageSize(0, PageSizeConfig{}); got != 1 {
		t.Fatalf("ClampPageSize(0) = %d, want 1", got)
	}
}

func TestClampPage(t *testing.T) {
	t.Parallel()

	if got := ClampPage(0); got != 1 {
		t.Fatalf("ClampPage(0) = %d, want 1", got)
	}
	if got := ClampPage(-2); got != 1 {
		t.Fatalf("ClampPage(-2) = %d, want 1", got)
	}
	if got := ClampPage(7); got != 7 {
		t.Fatalf("ClampPage(7) = %d, want 7", got)
	}
}
