package history

import (
	"time"
)

// Operation is the kind of filesystem operation performed
type Operation string

const (
	OpCopy Operation = "copy"
	OpMove Operation = "move"
)

// Transfer represents one recorded organize operation
type Transfer struct {
	ID         int64
	Operation  Operation
	SourcePath string
	TargetPath string
	Year       string
	Bytes      int64
	Duration   time.Duration
	ExecutedAt time.Time
}

// LogTransfer records a completed copy or move
func (h *DB) LogTransfer(op Operation, sourcePath, targetPath, year string, bytes int64, duration time.Duration) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.db.Exec(`
		INSERT INTO transfers (operation, source_path, target_path, year, bytes, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?)
	`, op, sourcePath, targetPath, year, bytes, duration.Milliseconds())

	return err
}

// Recent returns the most recent transfers, newest first
func (h *DB) Recent(limit int) ([]Transfer, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	rows, err := h.db.Query(`
		SELECT id, operation, source_path, target_path, year, bytes, duration_ms, executed_at
		FROM transfers
		ORDER BY executed_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transfers []Transfer
	for rows.Next() {
		var tr Transfer
		var op string
		var durationMS int64
		if err := rows.Scan(&tr.ID, &op, &tr.SourcePath, &tr.TargetPath,
			&tr.Year, &tr.Bytes, &durationMS, &tr.ExecutedAt); err != nil {
			return nil, err
		}
		tr.Operation = Operation(op)
		tr.Duration = time.Duration(durationMS) * time.Millisecond
		transfers = append(transfers, tr)
	}

	return transfers, rows.Err()
}

// StatsByYear returns per-year transfer counts and byte totals
func (h *DB) StatsByYear() (map[string]int, map[string]int64, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	rows, err := h.db.Query(`
		SELECT year, COUNT(*), COALESCE(SUM(bytes), 0)
		FROM transfers
		GROUP BY year
	`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	bytes := make(map[string]int64)
	for rows.Next() {
		var year string
		var count int
		var total int64
		if err := rows.Scan(&year, &count, &total); err != nil {
			return nil, nil, err
		}
		counts[year] = count
		bytes[year] = total
	}

	return counts, bytes, rows.Err()
}
