package store

const schema = `
CREATE TABLE IF NOT EXISTS deployments (
	id         TEXT    NOT NULL,
	task       TEXT    PRIMARY KEY,
	round      INTEGER NOT NULL,
	nonce      TEXT    NOT NULL,
	repo_url   TEXT    NOT NULL,
	pages_url  TEXT    NOT NULL,
	commit_sha TEXT    NOT NULL,
	snapshot   BLOB,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`
