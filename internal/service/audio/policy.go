// Package audio attaches recorded clips to catalog entries.
package audio

import "github.com/heartmarshall/lingua-backend/internal/domain"

// SelectBest picks at most one clip per entry from items, which must be
// ordered newest first. Items without a storage path are never picked.
// The newest usable clip wins unless a clip of type "example" exists, in
// which case the newest example wins.
func SelectBest(items []domain.AudioItem) map[string]domain.AudioItem {
	best := make(map[string]domain.AudioItem)
	for _, a := range items {
		if a.EntryID == "" || !a.HasStoragePath() {
			continue
		}
		held, ok := best[a.EntryID]
		if !ok || (a.IsExample() && !held.IsExample()) {
			best[a.EntryID] = a
		}
	}
	return best
}
