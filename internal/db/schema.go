package db

// SchemaSQL is the complete audit database schema. Tests create their
// databases through InitSchema so repository code and schema cannot drift
// apart unnoticed.
const SchemaSQL = `
-- Runs (one row per completed distribution run)
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at DATETIME NOT NULL,
	seed INTEGER NOT NULL,
	seeded INTEGER NOT NULL CHECK(seeded IN (0, 1)),
	patients INTEGER NOT NULL,
	doctors INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Assignments (one row per patient per round)
CREATE TABLE IF NOT EXISTS assignments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id INTEGER NOT NULL,
	patient_id TEXT NOT NULL,
	round INTEGER NOT NULL CHECK(round IN (1, 2)),
	doctor TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE,
	UNIQUE(run_id, patient_id, round)
);
`
