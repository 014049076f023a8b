package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	tbapi "github.com/OvyFlash/telegram-bot-api"
	"github.com/fatih/color"
	"github.com/go-pkgz/fileutils"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/umputun/tg-moderator/app/config"
	"github.com/umputun/tg-moderator/app/crosschat"
	"github.com/umputun/tg-moderator/app/events"
	"github.com/umputun/tg-moderator/app/handlers"
	"github.com/umputun/tg-moderator/app/moderation"
	"github.com/umputun/tg-moderator/app/storage"
	"github.com/umputun/tg-moderator/app/storage/engine"
	"github.com/umputun/tg-moderator/app/webapi"
)

type options struct {
	Telegram struct {
		Token     string  `long:"token" env:"TOKEN" description:"telegram bot token" required:"true"`
		AdminChat int64   `long:"admin-chat" env:"ADMIN_CHAT" description:"admin chat id for reviews and notifications"`
		RateLimit float64 `long:"rate" env:"RATE" default:"25" description:"api calls per second"`
		Attempts  int     `long:"attempts" env:"ATTEMPTS" default:"3" description:"attempts per api call on flood control"`
	} `group:"telegram" namespace:"telegram" env-namespace:"TELEGRAM"`

	DataBaseURL string `long:"db" env:"DB" default:"tg-moderator.db" description:"database, sqlite file or postgres url"`
	InstanceID  string `long:"gid" env:"GID" default:"tg-moderator" description:"group id, separates instances sharing a database"`

	Fanout struct {
		Concurrency   int           `long:"concurrency" env:"CONCURRENCY" default:"5" description:"max chats processed concurrently"`
		UnhealthyTTL  time.Duration `long:"unhealthy-ttl" env:"UNHEALTHY_TTL" default:"10m" description:"how long a failed chat is skipped"`
		CheckInterval time.Duration `long:"check-interval" env:"CHECK_INTERVAL" default:"30m" description:"chat health check interval"`
	} `group:"fanout" namespace:"fanout" env-namespace:"FANOUT"`

	Audit struct {
		Enabled    bool   `long:"enabled" env:"ENABLED" description:"enable audit log file"`
		FileName   string `long:"file" env:"FILE" default:"tg-moderator-audit.log" description:"location of audit log"`
		MaxSize    string `long:"max-size" env:"MAX_SIZE" default:"100M" description:"maximum size before it gets rotated"`
		MaxBackups int    `long:"max-backups" env:"MAX_BACKUPS" default:"10" description:"maximum number of old log files to retain"`
	} `group:"audit" namespace:"audit" env-namespace:"AUDIT"`

	Warnings struct {
		DefaultsFile string        `long:"defaults" env:"DEFAULTS" default:"warnings.yml" description:"warning defaults file, reloaded on change"`
		CacheTTL     time.Duration `long:"cache-ttl" env:"CACHE_TTL" default:"5m" description:"per-chat policy cache ttl"`
	} `group:"warnings" namespace:"warnings" env-namespace:"WARNINGS"`

	Server struct {
		Enabled    bool    `long:"enabled" env:"ENABLED" description:"enable web api"`
		ListenAddr string  `long:"listen" env:"LISTEN" default:":8080" description:"listen address"`
		AuthPasswd string  `long:"auth" env:"AUTH" description:"basic auth password for user tg-moderator"`
		RateLimit  float64 `long:"rate" env:"RATE" default:"10" description:"requests per second per client"`
	} `group:"server" namespace:"server" env-namespace:"SERVER"`

	SuperUsers events.SuperUsers `long:"super" env:"SUPER_USER" env-delim:"," description:"super-users, names or ids"`
	ReviewTTL  time.Duration     `long:"review-ttl" env:"REVIEW_TTL" default:"168h" description:"how long admin review buttons stay valid"`
	Dry        bool              `long:"dry" env:"DRY" description:"dry mode, no actions in chats"`
	Dbg        bool              `long:"dbg" env:"DEBUG" description:"debug mode"`
	TGDbg      bool              `long:"tg-dbg" env:"TG_DEBUG" description:"telegram debug mode"`
}

var revision = "local"

func main() {
	fmt.Printf("tg-moderator %s\n", revision)
	var opts options
	p := flags.NewParser(&opts, flags.PrintErrors|flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if !errors.As(err, &flagsErr) || flagsErr.Type != flags.ErrHelp {
			log.Printf("[ERROR] cli error: %v", err)
		}
		os.Exit(2)
	}

	setupLog(opts.Dbg, opts.Telegram.Token, opts.Server.AuthPasswd)
	log.Printf("[DEBUG] options: %+v", opts)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		// catch signal and invoke graceful termination
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Printf("[WARN] interrupt signal")
		cancel()
	}()

	if err := execute(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

func execute(ctx context.Context, opts options) error {
	if opts.Dry {
		log.Print("[WARN] dry mode, no actual actions in chats")
	}

	db, err := engine.New(ctx, opts.DataBaseURL, opts.InstanceID)
	if err != nil {
		return fmt.Errorf("can't make db %s: %w", opts.DataBaseURL, err)
	}
	defer db.Close()

	st, err := makeStores(ctx, db)
	if err != nil {
		return err
	}

	tbAPI, err := tbapi.NewBotAPI(opts.Telegram.Token)
	if err != nil {
		return fmt.Errorf("can't make telegram bot, %w", err)
	}
	tbAPI.Debug = opts.TGDbg
	log.Printf("[INFO] bot %q (%d) started", tbAPI.Self.UserName, tbAPI.Self.ID)

	actions := events.NewTelegramActions(tbAPI, events.ActionsParams{
		RatePerSec: opts.Telegram.RateLimit,
		Attempts:   opts.Telegram.Attempts,
		Dry:        opts.Dry,
	})

	lookup := config.NewLookup(st.chatConfigs, config.NewDefaults(), opts.Warnings.CacheTTL)
	watchDefaults := fileutils.IsFile(opts.Warnings.DefaultsFile)
	if watchDefaults {
		if err = lookup.LoadDefaultsFile(opts.Warnings.DefaultsFile); err != nil {
			return fmt.Errorf("can't load warning defaults: %w", err)
		}
	} else {
		log.Printf("[INFO] warning defaults file %s not found, builtin defaults %+v",
			opts.Warnings.DefaultsFile, lookup.Defaults().Warnings)
	}

	auditFile, err := makeAuditLogWriter(opts)
	if err != nil {
		return fmt.Errorf("can't make audit log writer: %w", err)
	}
	defer auditFile.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	health := crosschat.NewHealthGate(st.chats, opts.Fanout.UnhealthyTTL)
	executor := crosschat.NewExecutor(st.chats, health, opts.Fanout.Concurrency, crosschat.NewMetrics(registry))

	publisher := events.NewReviewPublisher(st.contexts, actions, opts.Telegram.AdminChat)
	opener := handlers.NewReportOpener(st.reports, publisher)
	orchestrator, err := moderation.NewOrchestrator(moderation.Deps{
		Bans:         handlers.NewBans(actions, executor),
		Restrictions: handlers.NewRestrictions(actions, executor),
		Warnings:     handlers.NewWarnings(st.warnings),
		Trust:        handlers.NewTrust(st.trusted),
		Messages:     handlers.NewMessages(actions, st.messages),
		Audit:        handlers.NewAudit(st.audit, auditFile),
		Notify:       handlers.NewNotifications(actions, opts.Telegram.AdminChat),
		Training:     handlers.NewTraining(st.samples),
		Reports:      opener,
		Config:       lookup,
		BotID:        tbAPI.Self.ID,
	})
	if err != nil {
		return fmt.Errorf("can't make orchestrator: %w", err)
	}

	listener := &events.TelegramListener{
		TbAPI:       tbAPI,
		Messenger:   actions,
		Moderator:   orchestrator,
		Callbacks:   events.NewReportCallbackService(st.reports, st.contexts, orchestrator, actions),
		Chats:       st.chats,
		Messages:    st.messages,
		Bans:        st.audit,
		Reports:     st.reports,
		Publisher:   publisher,
		SuperUsers:  opts.SuperUsers,
		AdminChatID: opts.Telegram.AdminChat,
	}
	checker := &events.HealthChecker{API: actions, Store: st.chats, BotID: tbAPI.Self.ID, Interval: opts.Fanout.CheckInterval}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := listener.Do(gctx); err != nil {
			return fmt.Errorf("telegram listener failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		checker.Run(gctx)
		return nil
	})
	g.Go(func() error {
		cleanupReviews(gctx, st.contexts, opts.ReviewTTL, time.Hour)
		return nil
	})
	if watchDefaults {
		g.Go(func() error {
			if err := lookup.WatchDefaults(gctx, opts.Warnings.DefaultsFile); err != nil {
				log.Printf("[WARN] warning defaults are not watched: %v", err)
			}
			return nil
		})
	}
	if opts.Server.Enabled {
		srv := webapi.NewServer(webapi.Config{
			Version:    revision,
			ListenAddr: opts.Server.ListenAddr,
			Moderator:  orchestrator,
			Audit:      st.audit,
			Settings:   lookup,
			Samples:    st.samples,
			Reports:    st.reports,
			Exams:      opener,
			Metrics:    promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
			AuthPasswd: opts.Server.AuthPasswd,
			RateLimit:  opts.Server.RateLimit,
		})
		g.Go(func() error {
			if err := srv.Run(gctx); err != nil {
				return fmt.Errorf("web api failed: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// stores is a set of repositories sharing the same db
type stores struct {
	reports     *storage.Reports
	contexts    *storage.CallbackContexts
	chats       *storage.ManagedChats
	audit       *storage.AuditLog
	warnings    *storage.Warnings
	trusted     *storage.TrustedUsers
	messages    *storage.Messages
	samples     *storage.Samples
	chatConfigs *storage.ChatConfigs[config.WarningSystem]
}

func makeStores(ctx context.Context, db *engine.SQL) (res stores, err error) {
	if res.reports, err = storage.NewReports(ctx, db); err != nil {
		return stores{}, fmt.Errorf("can't make reports store: %w", err)
	}
	if res.contexts, err = storage.NewCallbackContexts(ctx, db); err != nil {
		return stores{}, fmt.Errorf("can't make callback contexts store: %w", err)
	}
	if res.chats, err = storage.NewManagedChats(ctx, db); err != nil {
		return stores{}, fmt.Errorf("can't make managed chats store: %w", err)
	}
	if res.audit, err = storage.NewAuditLog(ctx, db); err != nil {
		return stores{}, fmt.Errorf("can't make audit store: %w", err)
	}
	if res.warnings, err = storage.NewWarnings(ctx, db); err != nil {
		return stores{}, fmt.Errorf("can't make warnings store: %w", err)
	}
	if res.trusted, err = storage.NewTrustedUsers(ctx, db); err != nil {
		return stores{}, fmt.Errorf("can't make trusted users store: %w", err)
	}
	if res.messages, err = storage.NewMessages(ctx, db); err != nil {
		return stores{}, fmt.Errorf("can't make messages store: %w", err)
	}
	if res.samples, err = storage.NewSamples(ctx, db); err != nil {
		return stores{}, fmt.Errorf("can't make samples store: %w", err)
	}
	if res.chatConfigs, err = storage.NewChatConfigs[config.WarningSystem](ctx, db, "warnings"); err != nil {
		return stores{}, fmt.Errorf("can't make chat configs store: %w", err)
	}
	return res, nil
}

type reviewCleaner interface {
	Cleanup(ctx context.Context, before time.Time) (int64, error)
}

// cleanupReviews removes expired callback contexts, buttons of such reviews answer "expired"
func cleanupReviews(ctx context.Context, store reviewCleaner, ttl, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Printf("[DEBUG] review cleanup stopped")
			return
		case <-ticker.C:
			n, err := store.Cleanup(ctx, time.Now().Add(-ttl))
			if err != nil {
				log.Printf("[WARN] can't cleanup expired reviews, %v", err)
				continue
			}
			if n > 0 {
				log.Printf("[INFO] removed %d expired reviews", n)
			}
		}
	}
}

// makeAuditLogWriter creates audit log writer, json line per moderation action.
// it parses options and makes lumberjack logger with rotation
func makeAuditLogWriter(opts options) (io.WriteCloser, error) {
	if !opts.Audit.Enabled {
		return nopWriteCloser{io.Discard}, nil
	}

	maxSize, err := sizeParse(opts.Audit.MaxSize)
	if err != nil {
		return nil, fmt.Errorf("can't parse audit MaxSize: %w", err)
	}
	maxSize /= 1048576

	log.Printf("[INFO] audit log enabled for %s, max size %dM", opts.Audit.FileName, maxSize)
	return &lumberjack.Logger{
		Filename:   opts.Audit.FileName,
		MaxSize:    int(maxSize), //nolint:gosec // size in MB is small
		MaxBackups: opts.Audit.MaxBackups,
		Compress:   true,
		LocalTime:  true,
	}, nil
}

// sizeParse converts size with optional k/m/g/t suffix to bytes
func sizeParse(inp string) (uint64, error) {
	if inp == "" {
		return 0, errors.New("empty value")
	}
	for i, sfx := range []string{"k", "m", "g", "t"} {
		if strings.HasSuffix(strings.ToLower(inp), sfx) {
			val, err := strconv.Atoi(inp[:len(inp)-1])
			if err != nil {
				return 0, fmt.Errorf("can't parse %s: %w", inp, err)
			}
			return uint64(float64(val) * math.Pow(float64(1024), float64(i+1))), nil
		}
	}
	return strconv.ParseUint(inp, 10, 64)
}

type nopWriteCloser struct{ io.Writer }

func (n nopWriteCloser) Close() error { return nil }

func setupLog(dbg bool, secrets ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	nonEmpty := make([]string, 0, len(secrets))
	for _, s := range secrets {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	if len(nonEmpty) > 0 {
		logOpts = append(logOpts, lgr.Secret(nonEmpty...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
