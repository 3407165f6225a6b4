// Package cresca wires the review components into a single App that the
// CLI commands consume.
package cresca

import (
	"context"

	"github.com/Lfu001/cresca/internal/core/config"
	"github.com/Lfu001/cresca/internal/core/doctor"
	"github.com/Lfu001/cresca/internal/core/git"
	"github.com/Lfu001/cresca/internal/core/review"
	"github.com/Lfu001/cresca/internal/core/session"
)

// App is the central entry point for all cresca operations.
// Commands consume App instead of cherry-picking raw dependencies.
type App struct {
	Config   *config.Config
	Git      git.Git
	Sessions *session.Resolver
	Review   *review.Controller
	Approver *review.Approver
	Status   *review.Reporter
	Doctor   *DoctorService
}

// NewApp constructs an App from explicit dependencies.
func NewApp(cfg *config.Config, g git.Git) *App {
	sessions := session.NewResolver(g, cfg.BranchPrefix)

	return &App{
		Config:   cfg,
		Git:      g,
		Sessions: sessions,
		Review:   review.NewController(g, cfg.Remote, cfg.Policy()),
		Approver: review.NewApprover(g),
		Status:   review.NewReporter(g),
		Doctor:   NewDoctorService(cfg, g, sessions),
	}
}

// NewSession builds the session for a review of source against target.
func (a *App) NewSession(target, source string) session.Session {
	return session.New(a.Config.BranchPrefix, target, source)
}

// CurrentSession resolves the session of the checked out branch. Outside a
// review branch it returns a *review.PreconditionError.
func (a *App) CurrentSession(ctx context.Context) (session.Session, error) {
	branch, err := a.Git.CurrentBranch(ctx)
	if err != nil {
		return session.Session{}, err
	}

	sess, ok := session.Parse(branch, a.Sessions.Prefix())
	if !ok {
		return session.Session{}, review.ErrNotOnReviewBranch(branch)
	}
	return sess, nil
}

// DoctorService runs the environment checks.
type DoctorService struct {
	cfg      *config.Config
	git      git.Git
	sessions *session.Resolver
}

// NewDoctorService creates the doctor service.
func NewDoctorService(cfg *config.Config, g git.Git, sessions *session.Resolver) *DoctorService {
	return &DoctorService{cfg: cfg, git: g, sessions: sessions}
}

// RunChecks runs every check. configPath is the file the config was loaded
// from, empty when defaults are in use.
func (s *DoctorService) RunChecks(ctx context.Context, configPath string) []doctor.Result {
	checks := []doctor.Check{
		doctor.NewConfigCheck(s.cfg, configPath),
		doctor.NewToolsCheck(s.cfg.GitPath, s.git),
		doctor.NewRepoCheck(s.git, s.cfg.Remote),
	}

	// Session lookups need a repository.
	if inside, err := s.git.InsideWorkTree(ctx); err == nil && inside {
		checks = append(checks, doctor.NewSessionCheck(s.sessions))
	}

	return doctor.RunAll(ctx, checks)
}
