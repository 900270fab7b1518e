package update

import (
	"context"
	"errors"
	"fmt"
	"log"
)

var errNoStore = errors.New("update: no store configured")

// saveSchedule writes the whole schedule. On failure the in-memory edits are kept.
func (m Model) saveSchedule() Model {
	if m.saver == nil {
		m.LastError = errNoStore
		m.Status = StatusBar{Text: errNoStore.Error(), IsError: true}
		return m
	}
	if err := m.saver.Save(context.Background(), m.Schedule.Clone()); err != nil {
		wrapped := fmt.Errorf("save schedule: %w", err)
		log.Printf("studyplan: %v", wrapped)
		m.LastError = wrapped
		m.Status = StatusBar{Text: wrapped.Error(), IsError: true}
		m.notify("Save Failed", wrapped.Error(), "error")
		return m
	}
	log.Printf("studyplan: saved %d entries", len(m.Schedule))
	m.Dirty = false
	m.LastError = nil
	m.Status = StatusBar{Text: savedText, IsError: false}
	m.notify("Cronograma", savedText, "info")
	return m
}
