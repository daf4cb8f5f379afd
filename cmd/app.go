package cmd

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sakinahapp/sakinah/internal/activity"
	"github.com/sakinahapp/sakinah/internal/ai"
	"github.com/sakinahapp/sakinah/internal/cache"
	"github.com/sakinahapp/sakinah/internal/chat"
	"github.com/sakinahapp/sakinah/internal/config"
	"github.com/sakinahapp/sakinah/internal/daily"
	"github.com/sakinahapp/sakinah/internal/journal"
	"github.com/sakinahapp/sakinah/internal/logging"
	"github.com/sakinahapp/sakinah/internal/mood"
	"github.com/sakinahapp/sakinah/internal/prayer"
	"github.com/sakinahapp/sakinah/internal/quran"
	"github.com/sakinahapp/sakinah/internal/store"
)

// localUser scopes records when init has not generated an id yet.
const localUser = "local"

// app bundles what most commands need: config, logger, database and cache.
type app struct {
	cfg   *config.Config
	log   *zap.Logger
	db    *store.DB
	cache cache.Store
}

func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		// Logging is best-effort; commands still work without it.
		log = zap.NewNop()
	}

	db, err := store.Open()
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	return &app{
		cfg:   cfg,
		log:   log,
		db:    db,
		cache: cache.NewSQLite(db.Conn()),
	}, nil
}

func (a *app) Close() {
	a.db.Close()
	_ = a.log.Sync()
}

func (a *app) userID() string {
	if a.cfg.User.ID == "" {
		return localUser
	}
	return a.cfg.User.ID
}

func (a *app) journal() *journal.Store { return journal.NewStore(a.db.Conn()) }
func (a *app) moods() *mood.Store      { return mood.NewStore(a.db.Conn()) }
func (a *app) chats() *chat.Store      { return chat.NewStore(a.db.Conn()) }

// dailyOptions applies the [content] retry settings and the logger.
func (a *app) dailyOptions() []daily.Option {
	c := a.cfg.Content
	policy := daily.DefaultRetryPolicy()
	policy.MaxRetries = c.MaxRetries
	if c.InitialBackoff.Duration > 0 {
		policy.InitialInterval = c.InitialBackoff.Duration
	}
	return []daily.Option{daily.WithRetry(policy), daily.WithLogger(a.log)}
}

func (a *app) dailyVerse() *daily.Cached[quran.Ayah] {
	client := quran.NewClient(a.cfg.Content.QuranBaseURL, a.cfg.Content.Timeout.Duration, quran.WithLogger(a.log))
	return quran.DailyVerse(a.cache, client, a.dailyOptions()...)
}

// prayerState resolves the configured state, applying coordinate overrides.
// A non-empty override wins over the config value.
func (a *app) prayerState(override string) (prayer.State, error) {
	name := a.cfg.Prayer.State
	if override != "" {
		name = override
	}
	st, ok := prayer.Lookup(name)
	if !ok {
		return prayer.State{}, fmt.Errorf("unknown state %q (run `sakinah prayer states`)", name)
	}
	if override == "" && a.cfg.Prayer.Latitude != nil && a.cfg.Prayer.Longitude != nil {
		st.Latitude = *a.cfg.Prayer.Latitude
		st.Longitude = *a.cfg.Prayer.Longitude
	}
	return st, nil
}

func (a *app) prayerTimes(st prayer.State) *daily.Cached[prayer.Timings] {
	client := prayer.NewClient(a.cfg.Content.PrayerBaseURL, a.cfg.Content.Timeout.Duration, prayer.WithLogger(a.log))
	return prayer.DailyTimings(a.cache, client, st, a.cfg.Prayer.Method, a.dailyOptions()...)
}

// chatSession builds a Session with the resolved Gemini key.
func (a *app) chatSession() (*chat.Session, error) {
	key, err := ai.NewKeystore().Resolve("gemini")
	if err != nil {
		return nil, fmt.Errorf("%w (run `sakinah chat key set` or export %s)", err, ai.EnvGeminiKey)
	}
	provider, err := ai.GetProvider("gemini", key)
	if err != nil {
		return nil, err
	}
	return &chat.Session{
		Store:        a.chats(),
		Provider:     provider,
		Persona:      ai.Persona(a.cfg.Chat.Persona),
		Model:        a.cfg.Chat.Model,
		ContextLimit: a.cfg.Chat.ContextLimit,
		Log:          a.log,
	}, nil
}

// records gathers activity records for the chosen sources.
func (a *app) records(sources ...activity.Source) ([]activity.Record, error) {
	uid := a.userID()
	var all []activity.Record
	for _, src := range sources {
		var (
			recs []activity.Record
			err  error
		)
		switch src {
		case activity.SourceJournal:
			recs, err = a.journal().Records(uid)
		case activity.SourceMood:
			recs, err = a.moods().Records(uid)
		case activity.SourceChat:
			recs, err = a.chats().Records(uid)
		default:
			return nil, fmt.Errorf("unknown source %q", src)
		}
		if err != nil {
			return nil, fmt.Errorf("loading %s records: %w", src, err)
		}
		all = append(all, recs...)
	}
	return all, nil
}

// now is the viewer's "now", shifted to --date when set.
func now() time.Time {
	return asOf.Apply(time.Now())
}
