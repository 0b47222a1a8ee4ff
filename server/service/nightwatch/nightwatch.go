// Package nightwatch watches inbound message activity for late-night
// posting and decides when a user is due a (cooldown-gated) nag.
//
// The service only produces structured verdicts; the actual nag wording is
// the presentation layer's concern. Both of its maps are LRU-bounded so a
// long-running process does not grow without limit.
package nightwatch

import (
	"sync"
	"time"

	"github.com/chronogonk/chronogonk/internal/cache"
)

const (
	// NagHourStart and NagHourEnd bound the local-hour window [1, 5) in
	// which a message triggers a nag.
	NagHourStart = 1
	NagHourEnd   = 5

	// WarnCooldown is the minimum gap between nags for the same user.
	WarnCooldown = time.Hour

	// ActivityWindow is the rolling window used to decide whether a
	// late-night message is a solo or group occurrence.
	ActivityWindow = 10 * time.Minute

	// GroupThreshold is the unique-user count at which a channel reads as
	// a group conversation.
	GroupThreshold = 2

	maxTrackedUsers    = 4096
	maxTrackedChannels = 1024
)

// Nag is the verdict that a user should be warned about late-night posting.
type Nag struct {
	Hour      int
	LocalTime time.Time
	// Group is true when the channel had other recent participants, so the
	// presentation layer can pick a group phrase over a solo one.
	Group bool
}

type channelMessage struct {
	userID string
	at     time.Time
}

// Service tracks channel activity and warning cooldowns.
type Service struct {
	mu          sync.Mutex
	lastWarned  *cache.LRU[time.Time]
	channelLogs *cache.LRU[[]channelMessage]
}

// NewService creates a nightwatch service.
func NewService() *Service {
	return &Service{
		// Cooldown entries are useless after the cooldown has elapsed and
		// window entries after the window has, so TTLs double as cleanup.
		lastWarned:  cache.NewLRU[time.Time](maxTrackedUsers, WarnCooldown),
		channelLogs: cache.NewLRU[[]channelMessage](maxTrackedChannels, ActivityWindow),
	}
}

// TrackMessage records a message into the channel's rolling window,
// dropping entries older than the window on the way in.
func (s *Service) TrackMessage(channelID, userID string, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log, _ := s.channelLogs.Get(channelID)
	kept := log[:0]
	for _, m := range log {
		if now.Sub(m.at) < ActivityWindow {
			kept = append(kept, m)
		}
	}
	kept = append(kept, channelMessage{userID: userID, at: now})
	s.channelLogs.Set(channelID, kept, ActivityWindow)
}

// ActiveUserCount returns the number of distinct users seen in the
// channel within the rolling window.
func (s *Service) ActiveUserCount(channelID string, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeUserCountLocked(channelID, now)
}

func (s *Service) activeUserCountLocked(channelID string, now time.Time) int {
	log, ok := s.channelLogs.Get(channelID)
	if !ok {
		return 0
	}
	unique := make(map[string]struct{}, len(log))
	for _, m := range log {
		if now.Sub(m.at) < ActivityWindow {
			unique[m.userID] = struct{}{}
		}
	}
	return len(unique)
}

// Check decides whether the user's message warrants a late-night nag. It
// fires only inside the [1, 5) local-hour window and at most once per
// cooldown period per user; firing records the warning instant.
func (s *Service) Check(userID string, loc *time.Location, channelID string, now time.Time) (*Nag, bool) {
	local := now.In(loc)
	hour := local.Hour()
	if hour < NagHourStart || hour >= NagHourEnd {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if last, ok := s.lastWarned.Get(userID); ok && now.Sub(last) < WarnCooldown {
		return nil, false
	}
	s.lastWarned.Set(userID, now, WarnCooldown)

	return &Nag{
		Hour:      hour,
		LocalTime: local,
		Group:     s.activeUserCountLocked(channelID, now) >= GroupThreshold,
	}, true
}
