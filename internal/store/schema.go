package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS budget (
    id               INTEGER PRIMARY KEY CHECK (id = 0),
    monthly_income   REAL NOT NULL DEFAULT 0,
    period           TEXT NOT NULL DEFAULT 'monthly',
    weekly_budget    REAL NOT NULL DEFAULT 0,
    monthly_budget   REAL NOT NULL DEFAULT 0,
    updated_at       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS expenses (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    amount       REAL NOT NULL,
    date         TEXT NOT NULL,
    description  TEXT NOT NULL DEFAULT '',
    category     TEXT NOT NULL DEFAULT 'Uncategorized'
);

CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date);
`
