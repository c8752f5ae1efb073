package database

import "testing"

func TestRewritePlaceholdersToNumbered(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"no placeholders", "SELECT 1", "SELECT 1"},
		{"single placeholder", "SELECT * FROM attempts WHERE id = ?", "SELECT * FROM attempts WHERE id = $1"},
		{
			"multiple placeholders",
			"INSERT INTO attempt_answers (attempt_id, question_id, is_correct) VALUES (?, ?, ?)",
			"INSERT INTO attempt_answers (attempt_id, question_id, is_correct) VALUES ($1, $2, $3)",
		},
		{
			"placeholders in conditions",
			"UPDATE attempts SET status = ?, finished_at = ? WHERE id = ? AND status = ?",
			"UPDATE attempts SET status = $1, finished_at = $2 WHERE id = $3 AND status = $4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rewritePlaceholdersToNumbered(tt.query)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDialectQueryRewriting(t *testing.T) {
	query := "SELECT id FROM questions WHERE category = ? AND level = ?"

	if got := NewSQLiteDialect().RewriteQuery(query); got != query {
		t.Errorf("sqlite rewrote query to %q", got)
	}
	if got := NewMySQLDialect().RewriteQuery(query); got != query {
		t.Errorf("mysql rewrote query to %q", got)
	}
	want := "SELECT id FROM questions WHERE category = $1 AND level = $2"
	if got := NewPostgresDialect().RewriteQuery(query); got != want {
		t.Errorf("postgres rewrote query to %q, want %q", got, want)
	}
}

func TestDialectLastInsertIdSupport(t *testing.T) {
	if !NewSQLiteDialect().SupportsLastInsertId() {
		t.Error("sqlite should support LastInsertId")
	}
	if !NewMySQLDialect().SupportsLastInsertId() {
		t.Error("mysql should support LastInsertId")
	}
	if NewPostgresDialect().SupportsLastInsertId() {
		t.Error("postgres should not support LastInsertId")
	}
}

func TestDialectMigrationsSubdirs(t *testing.T) {
	if got := NewSQLiteDialect().MigrationsSubdir(); got != "sqlite" {
		t.Errorf("sqlite subdir = %q", got)
	}
	if got := NewPostgresDialect().MigrationsSubdir(); got != "postgres" {
		t.Errorf("postgres subdir = %q", got)
	}
	if got := NewMySQLDialect().MigrationsSubdir(); got != "mysql" {
		t.Errorf("mysql subdir = %q", got)
	}
}
