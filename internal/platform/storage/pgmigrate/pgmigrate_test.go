package pgmigrate

import "testing"

func TestApplyMigrationsRequiresDB(t *testing.T) {
	t.Parallel()

	if err := ApplyMigrations(nil, nil, ""); err == nil {
		t.Fatal("expected nil db error")
	}
}

func TestExtractUpMigration(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "no markers returns content",
			content: "CREATE TABLE a (id INT);",
			want:    "CREATE TABLE a (id INT);",
		},
		{
			name:    "up only returns tail",
			content: "-- +migrate Up\nCREATE TABLE b (id INT);",
			want:    "\nCREATE TABLE b (id INT);",
		},
		{
			name:    "up and down returns up section",
			content: "-- +migrate Up\nCREATE TABLE c (id INT);\n-- +migrate Down\nDROP TABLE c;",
			want:    "\nCREATE TABLE c (id INT);\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractUpMigration(tc.content); got != tc.want {
				t.Fatalf("ExtractUpMigration = %q, want %q", got, tc.want)
			}
		})
	}
}
