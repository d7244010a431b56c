package journal

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS change_events (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	project_id  TEXT NOT NULL,
	title       TEXT NOT NULL DEFAULT '',
	operation   TEXT NOT NULL CHECK(operation IN ('create', 'move')),
	from_status INTEGER NOT NULL,
	to_status   INTEGER NOT NULL,
	occurred_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_change_events_project_id ON change_events(project_id);
CREATE INDEX IF NOT EXISTS idx_change_events_occurred_at ON change_events(occurred_at);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
