package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkCollisionBurst BookmarkType = "collision_burst"
	BookmarkEnergySurge    BookmarkType = "energy_surge"
	BookmarkEnergyDrop     BookmarkType = "energy_drop"
	BookmarkSettled        BookmarkType = "settled"
)

// settledSpeed is the maximum particle speed below which a population is at rest.
const settledSpeed = 1.0

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int64        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects notable windows in the simulation.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	settled bool // last window was at rest
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	// A window with a start or stop compares against a different population.
	if stats.Starts > 0 || stats.Stops > 0 {
		bd.reset()
	}

	if b := bd.checkCollisionBurst(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkEnergyShift(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkSettled(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) reset() {
	bd.historyIdx = 0
	bd.historyFull = false
	bd.settled = false
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkCollisionBurst(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total float64
	for _, h := range history {
		total += h.CollisionsPerSec
	}
	avg := total / float64(len(history))
	if avg == 0 {
		return nil
	}

	if stats.CollisionsPerSec > avg*2.0 && stats.Collisions >= 10 {
		return &Bookmark{
			Type:        BookmarkCollisionBurst,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Collision rate %.1f/s is %.1fx average (%.1f/s)", stats.CollisionsPerSec, stats.CollisionsPerSec/avg, avg),
		}
	}
	return nil
}

// checkEnergyShift compares kinetic energy with the previous window.
func (bd *BookmarkDetector) checkEnergyShift(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) == 0 || stats.Population == 0 {
		return nil
	}

	prevIdx := (bd.historyIdx - 1 + bd.historySize) % bd.historySize
	prev := bd.history[prevIdx].KineticEnergy
	if prev <= 0 {
		return nil
	}

	ratio := stats.KineticEnergy / prev
	switch {
	case ratio > 2.0:
		return &Bookmark{
			Type:        BookmarkEnergySurge,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Kinetic energy rose %.1fx from %.1f to %.1f", ratio, prev, stats.KineticEnergy),
		}
	case ratio < 0.5:
		return &Bookmark{
			Type:        BookmarkEnergyDrop,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Kinetic energy fell to %.0f%% (%.1f to %.1f)", ratio*100, prev, stats.KineticEnergy),
		}
	}
	return nil
}

// checkSettled triggers once when a population comes to rest.
func (bd *BookmarkDetector) checkSettled(stats WindowStats) *Bookmark {
	atRest := stats.Population > 0 && stats.SpeedMax < settledSpeed
	wasSettled := bd.settled
	bd.settled = atRest
	if !atRest || wasSettled {
		return nil
	}

	return &Bookmark{
		Type:        BookmarkSettled,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("%d particles at rest (max speed %.2f)", stats.Population, stats.SpeedMax),
	}
}
