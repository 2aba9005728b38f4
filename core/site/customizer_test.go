package site

import (
	"context"
	"sync"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	mu      sync.Mutex
	table   map[string]WebsiteConfig
	getErr  error
	saveErr error
	saves   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{table: make(map[string]WebsiteConfig)}
}

func (r *fakeRepo) GetConfig(ctx context.Context, subdomain string) (WebsiteConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return WebsiteConfig{}, r.getErr
	}
	cfg, ok := r.table[subdomain]
	if !ok {
		return WebsiteConfig{}, ErrNotFound
	}
	return cfg.Clone(), nil
}

func (r *fakeRepo) SaveConfig(ctx context.Context, subdomain string, cfg WebsiteConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.table[subdomain] = cfg.Clone()
	return nil
}

func TestCustomizerRequiresLoad(t *testing.T) {
	cust := NewCustomizer(NewService(newFakeRepo()), "hilltop")
	ctx := context.Background()

	assert.False(t, cust.Loaded())

	_, err := cust.Config()
	assert.Equal(t, ErrNotLoaded, err)
	_, err = cust.Render()
	assert.Equal(t, ErrNotLoaded, err)
	assert.Equal(t, ErrNotLoaded, cust.Save(ctx))
	assert.Equal(t, ErrNotLoaded, cust.UpdateBranding(BrandingPatch{Motto: strPtr("x")}))
	_, err = cust.AddAcademicProgram()
	assert.Equal(t, ErrNotLoaded, err)
}

func TestCustomizerLoadsDefaultsForNewTenant(t *testing.T) {
	cust := NewCustomizer(NewService(newFakeRepo()), "hilltop")
	assert.NoError(t, cust.Load(context.Background()))
	assert.True(t, cust.Loaded())

	cfg, err := cust.Config()
	assert.NoError(t, err)
	assert.Equal(t, DefaultConfig().Homepage.Hero.Title, cfg.Homepage.Hero.Title)
	assert.Equal(t, ThemeClassic, cfg.Theme.Mode)
}

func TestCustomizerLoadPropagatesRepoError(t *testing.T) {
	repo := newFakeRepo()
	repo.getErr = pkgerrors.New("connection refused")
	cust := NewCustomizer(NewService(repo), "hilltop")

	assert.Error(t, cust.Load(context.Background()))
	assert.False(t, cust.Loaded())
}

func TestCustomizerEditAndSave(t *testing.T) {
	repo := newFakeRepo()
	cust := NewCustomizer(NewService(repo), "Hilltop") // uppercase subdomain normalized on save
	ctx := context.Background()
	assert.NoError(t, cust.Load(ctx))

	assert.NoError(t, cust.UpdateBranding(BrandingPatch{SchoolName: strPtr("Hilltop Academy")}))
	mode := ThemeDark
	assert.NoError(t, cust.UpdateTheme(ThemePatch{Mode: &mode}))

	// nothing persisted until Save
	assert.Empty(t, repo.table)
	assert.NoError(t, cust.Save(ctx))

	stored, ok := repo.table["hilltop"]
	assert.True(t, ok)
	assert.Equal(t, "Hilltop Academy", stored.Branding.SchoolName)
	assert.Equal(t, ThemeDark, stored.Theme.Mode)
}

func TestCustomizerSaveFailureKeepsWorkingCopy(t *testing.T) {
	repo := newFakeRepo()
	repo.saveErr = pkgerrors.New("disk full")
	cust := NewCustomizer(NewService(repo), "hilltop")
	ctx := context.Background()
	assert.NoError(t, cust.Load(ctx))
	assert.NoError(t, cust.UpdateFooter(FooterPatch{Text: strPtr("See you soon.")}))

	assert.Error(t, cust.Save(ctx))

	// edits survive the failure and the session stays savable
	cfg, err := cust.Config()
	assert.NoError(t, err)
	assert.Equal(t, "See you soon.", cfg.Footer.Text)

	repo.saveErr = nil
	assert.NoError(t, cust.Save(ctx))
	assert.Equal(t, "See you soon.", repo.table["hilltop"].Footer.Text)
}

func TestCustomizerReloadDoesNotDiscardEdits(t *testing.T) {
	cust := NewCustomizer(NewService(newFakeRepo()), "hilltop")
	ctx := context.Background()
	assert.NoError(t, cust.Load(ctx))
	assert.NoError(t, cust.UpdateBranding(BrandingPatch{Motto: strPtr("Per aspera")}))

	assert.NoError(t, cust.Load(ctx))

	cfg, err := cust.Config()
	assert.NoError(t, err)
	assert.Equal(t, "Per aspera", cfg.Branding.Motto)
}

func TestCustomizerConfigReturnsCopy(t *testing.T) {
	cust := NewCustomizer(NewService(newFakeRepo()), "hilltop")
	assert.NoError(t, cust.Load(context.Background()))

	cfg, err := cust.Config()
	assert.NoError(t, err)
	cfg.Navigation.Links[0].Label = "mutated"

	again, err := cust.Config()
	assert.NoError(t, err)
	assert.Equal(t, "Home", again.Navigation.Links[0].Label)
}

func TestCustomizerReplace(t *testing.T) {
	cust := NewCustomizer(NewService(newFakeRepo()), "hilltop")
	assert.NoError(t, cust.Load(context.Background()))

	incoming := WebsiteConfig{}
	incoming.Branding.SchoolName = "Imported School"
	assert.NoError(t, cust.Replace(incoming))

	cfg, err := cust.Config()
	assert.NoError(t, err)
	assert.Equal(t, "Imported School", cfg.Branding.SchoolName)
	// replaced documents are normalized
	assert.Equal(t, SchemaVersion, cfg.SchemaVersion)
	assert.NotNil(t, cfg.Homepage.Academics)
}

func TestServiceLoadNormalizesStoredDocument(t *testing.T) {
	repo := newFakeRepo()
	repo.table["hilltop"] = WebsiteConfig{} // legacy document, nil slices, no version
	svc := NewService(repo)

	cfg, err := svc.Load(context.Background(), "hilltop")
	assert.NoError(t, err)
	assert.Equal(t, SchemaVersion, cfg.SchemaVersion)
	assert.NotNil(t, cfg.Navigation.Links)
	assert.NotNil(t, cfg.Homepage.Testimonials)
}

func TestServiceLoadDetectsWrappedNotFound(t *testing.T) {
	repo := newFakeRepo()
	repo.getErr = pkgerrors.Wrap(ErrNotFound, "querying website config")
	svc := NewService(repo)

	cfg, err := svc.Load(context.Background(), "hilltop")
	assert.NoError(t, err)
	assert.Equal(t, DefaultConfig().Homepage.Hero.Title, cfg.Homepage.Hero.Title)
}
