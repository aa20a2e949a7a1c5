package git

import (
	"errors"
	"time"

	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"

	gperrors "gitpro.dev/gitpro/internal/errors"
)

// errNoIdentity is returned when neither user.name nor author.name is configured
var errNoIdentity = errors.New("no identity configured; set user.name and user.email")

// DefaultSignature builds the author/committer signature from git config.
// Repository, global and system configuration are merged, in that order of precedence.
func (r *Repository) DefaultSignature() (*object.Signature, error) {
	cfg, err := r.ConfigScoped(gitconfig.SystemScope)
	if err != nil {
		return nil, gperrors.NewBackendError("read config", err)
	}

	name := firstNonEmpty(cfg.Author.Name, cfg.User.Name)
	email := firstNonEmpty(cfg.Author.Email, cfg.User.Email)
	if name == "" {
		return nil, gperrors.NewBackendError("resolve signature", errNoIdentity)
	}

	return &object.Signature{
		Name:  name,
		Email: email,
		When:  time.Now(),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
