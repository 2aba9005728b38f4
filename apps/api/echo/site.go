package echoapi

import (
	"encoding/base64"
	"fmt"
	"image"
	"net/http"
	"net/mail"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/skulafrica/sitebuilder/core"
	"github.com/skulafrica/sitebuilder/core/site"
)

// maxImageWidth caps uploaded images before they are inlined as data URIs;
// anything wider gets downscaled to keep documents a sane size.
const maxImageWidth = 1600

type (
	siteApi struct {
		svc      *site.Service
		mailSvc  core.EmailService
		validate *validator.Validate
		logger   core.Logger
		conf     *core.Config
	}

	ContactMessageRequest struct {
		FirstName string `json:"firstName" validate:"required,max=100"`
		LastName  string `json:"lastName" validate:"required,max=100"`
		Email     string `json:"email" validate:"required,email"`
		Message   string `json:"message" validate:"required,max=5000"`
	}

	ImageUploadResponse struct {
		DataURI string `json:"dataUri"`
	}

	SuccessResponse struct {
		Success string `json:"success"`
	}
)

func registerSiteAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := siteApi{
		svc:      deps.SiteSvc,
		mailSvc:  deps.MailSvc,
		validate: deps.Validate,
		logger:   deps.Logger,
		conf:     deps.Conf,
	}

	sg := g.Group("/schools/:subdomain")

	// un-authed endpoints: the public site payload and its contact form
	sg.GET("/site", api.renderSite)
	sg.POST("/contact-messages", api.sendContactMessage)

	// admin endpoints
	ag := sg.Group("", jwt, schoolAdminMiddleware())
	ag.POST("/images", api.uploadImage)

	cg := ag.Group("/website-config")
	cg.GET("", api.retrieveConfig)
	cg.PUT("", api.replaceConfig)
	cg.POST("/preview", api.previewConfig)
	cg.PATCH("/branding", api.updateBranding)
	cg.PATCH("/homepage", api.updateHomepage)
	cg.PATCH("/visibility", api.updateVisibility)
	cg.PATCH("/theme", api.updateTheme)
	cg.PATCH("/contact", api.updateContact)
	cg.PATCH("/navigation", api.updateNavigation)
	cg.PATCH("/footer", api.updateFooter)

	cg.POST("/homepage/academics", api.addAcademicProgram)
	cg.PATCH("/homepage/academics/:id", api.updateAcademicProgram)
	cg.DELETE("/homepage/academics/:id", api.removeAcademicProgram)

	cg.POST("/navigation/links", api.addNavLink)
	cg.PATCH("/navigation/links/:id", api.updateNavLink)
	cg.DELETE("/navigation/links/:id", api.removeNavLink)
}

// customizer opens an editing session for the request's school and loads
// the stored document (or defaults). Each request gets its own session;
// concurrent writers are last-write-wins at the store.
func (api *siteApi) customizer(ctx echo.Context) (*site.Customizer, error) {
	cust := site.NewCustomizer(api.svc, ctx.Param("subdomain"))
	if err := cust.Load(ctx.Request().Context()); err != nil {
		return nil, errors.Wrap(err, "loading website config")
	}
	return cust, nil
}

// saveAndRespond persists the session and returns the updated document.
func (api *siteApi) saveAndRespond(ctx echo.Context, cust *site.Customizer) error {
	if err := cust.Save(ctx.Request().Context()); err != nil {
		return errors.Wrap(err, "saving website config")
	}
	cfg, err := cust.Config()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cfg)
}

// Handlers

func (api *siteApi) renderSite(ctx echo.Context) error {
	cust, err := api.customizer(ctx)
	if err != nil {
		return err
	}
	page, err := cust.Render()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, page)
}

func (api *siteApi) retrieveConfig(ctx echo.Context) error {
	cust, err := api.customizer(ctx)
	if err != nil {
		return err
	}
	cfg, err := cust.Config()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cfg)
}

func (api *siteApi) replaceConfig(ctx echo.Context) error {
	var data site.WebsiteConfig
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to WebsiteConfig")
	}
	if data.Theme.Mode != "" && !site.ValidThemeMode(data.Theme.Mode) {
		return core.NewValidationError(nil, core.FieldError{Field: "theme.mode", Error: "unknown theme mode"})
	}

	cust, err := api.customizer(ctx)
	if err != nil {
		return err
	}
	if err = cust.Replace(data); err != nil {
		return err
	}
	return api.saveAndRespond(ctx, cust)
}

// previewConfig renders a posted document without persisting anything,
// so editors can see unsaved changes.
func (api *siteApi) previewConfig(ctx echo.Context) error {
	var data site.WebsiteConfig
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to WebsiteConfig")
	}

	cust, err := api.customizer(ctx)
	if err != nil {
		return err
	}
	if err = cust.Replace(data); err != nil {
		return err
	}
	page, err := cust.Render()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, page)
}

func (api *siteApi) updateBranding(ctx echo.Context) error {
	var data site.BrandingPatch
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to BrandingPatch")
	}
	return api.applyPatch(ctx, &data, func(cust *site.Customizer) error {
		return cust.UpdateBranding(data)
	})
}

func (api *siteApi) updateHomepage(ctx echo.Context) error {
	var data site.HomepagePatch
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to HomepagePatch")
	}
	return api.applyPatch(ctx, &data, func(cust *site.Customizer) error {
		return cust.UpdateHomepage(data)
	})
}

func (api *siteApi) updateVisibility(ctx echo.Context) error {
	var data site.VisibilityPatch
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to VisibilityPatch")
	}
	return api.applyPatch(ctx, &data, func(cust *site.Customizer) error {
		return cust.UpdateVisibility(data)
	})
}

func (api *siteApi) updateTheme(ctx echo.Context) error {
	var data site.ThemePatch
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ThemePatch")
	}
	return api.applyPatch(ctx, &data, func(cust *site.Customizer) error {
		return cust.UpdateTheme(data)
	})
}

func (api *siteApi) updateContact(ctx echo.Context) error {
	var data site.ContactPatch
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ContactPatch")
	}
	return api.applyPatch(ctx, &data, func(cust *site.Customizer) error {
		return cust.UpdateContact(data)
	})
}

func (api *siteApi) updateNavigation(ctx echo.Context) error {
	var data site.NavigationPatch
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NavigationPatch")
	}
	return api.applyPatch(ctx, &data, func(cust *site.Customizer) error {
		return cust.UpdateNavigation(data)
	})
}

func (api *siteApi) updateFooter(ctx echo.Context) error {
	var data site.FooterPatch
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to FooterPatch")
	}
	return api.applyPatch(ctx, &data, func(cust *site.Customizer) error {
		return cust.UpdateFooter(data)
	})
}

// applyPatch runs the shared patch pipeline: validate, load the session,
// apply the mutation, persist and return the updated document.
func (api *siteApi) applyPatch(
	ctx echo.Context,
	data interface{ Validate(*validator.Validate) error },
	apply func(*site.Customizer) error,
) error {
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	cust, err := api.customizer(ctx)
	if err != nil {
		return err
	}
	if err = apply(cust); err != nil {
		return err
	}
	return api.saveAndRespond(ctx, cust)
}

func (api *siteApi) addAcademicProgram(ctx echo.Context) error {
	cust, err := api.customizer(ctx)
	if err != nil {
		return err
	}
	prog, err := cust.AddAcademicProgram()
	if err != nil {
		return err
	}
	if err = cust.Save(ctx.Request().Context()); err != nil {
		return errors.Wrap(err, "saving website config")
	}
	return ctx.JSON(http.StatusCreated, prog)
}

func (api *siteApi) updateAcademicProgram(ctx echo.Context) error {
	var data site.AcademicProgramPatch
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AcademicProgramPatch")
	}
	return api.applyPatch(ctx, &data, func(cust *site.Customizer) error {
		return cust.UpdateAcademicProgram(ctx.Param("id"), data)
	})
}

func (api *siteApi) removeAcademicProgram(ctx echo.Context) error {
	cust, err := api.customizer(ctx)
	if err != nil {
		return err
	}
	if err = cust.RemoveAcademicProgram(ctx.Param("id")); err != nil {
		return err
	}
	if err = cust.Save(ctx.Request().Context()); err != nil {
		return errors.Wrap(err, "saving website config")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *siteApi) addNavLink(ctx echo.Context) error {
	cust, err := api.customizer(ctx)
	if err != nil {
		return err
	}
	link, err := cust.AddNavLink()
	if err != nil {
		return err
	}
	if err = cust.Save(ctx.Request().Context()); err != nil {
		return errors.Wrap(err, "saving website config")
	}
	return ctx.JSON(http.StatusCreated, link)
}

func (api *siteApi) updateNavLink(ctx echo.Context) error {
	var data site.NavLinkPatch
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NavLinkPatch")
	}
	return api.applyPatch(ctx, &data, func(cust *site.Customizer) error {
		return cust.UpdateNavLink(ctx.Param("id"), data)
	})
}

func (api *siteApi) removeNavLink(ctx echo.Context) error {
	cust, err := api.customizer(ctx)
	if err != nil {
		return err
	}
	if err = cust.RemoveNavLink(ctx.Param("id")); err != nil {
		return err
	}
	if err = cust.Save(ctx.Request().Context()); err != nil {
		return errors.Wrap(err, "saving website config")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *siteApi) sendContactMessage(ctx echo.Context) error {
	var data ContactMessageRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ContactMessageRequest")
	}
	data.FirstName = core.CleanString(data.FirstName)
	data.LastName = core.CleanString(data.LastName)
	data.Email = core.CleanString(data.Email, true /* lower */)
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	cfg, err := api.svc.Load(ctx.Request().Context(), ctx.Param("subdomain"))
	if err != nil {
		return errors.Wrap(err, "loading website config")
	}
	if cfg.Contact.Email == "" {
		return core.NewValidationError(errors.New("this school does not accept contact messages"))
	}

	api.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Name: cfg.Branding.SchoolName, Address: cfg.Contact.Email}},
		Subject:      fmt.Sprintf("New contact message from %s %s", data.FirstName, data.LastName),
		TemplateName: "contact-message",
		TemplateData: data,
	})
	api.logger.Info(fmt.Sprintf("contact message queued for %q", ctx.Param("subdomain")))
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "message sent"})
}

// uploadImage decodes a multipart image, downscales it when oversized and
// returns it as a data URI ready to be set on any image field.
func (api *siteApi) uploadImage(ctx echo.Context) error {
	fh, err := ctx.FormFile("image")
	if err != nil {
		return core.NewValidationError(nil, core.FieldError{Field: "image", Error: "this field is required"})
	}
	file, err := fh.Open()
	if err != nil {
		return errors.Wrap(err, "opening uploaded image")
	}
	defer func() { _ = file.Close() }()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return core.NewValidationError(nil, core.FieldError{Field: "image", Error: "unsupported image format"})
	}
	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	uri, err := encodeDataURI(img, fh.Header.Get("Content-Type"))
	if err != nil {
		return errors.Wrap(err, "encoding uploaded image")
	}
	return ctx.JSON(http.StatusOK, ImageUploadResponse{DataURI: uri})
}

func encodeDataURI(img image.Image, contentType string) (string, error) {
	format := imaging.JPEG
	mime := "image/jpeg"
	if strings.Contains(contentType, "png") {
		format = imaging.PNG
		mime = "image/png"
	}

	var buf strings.Builder
	buf.WriteString("data:" + mime + ";base64,")
	enc := base64.NewEncoder(base64.StdEncoding, &buf)
	if err := imaging.Encode(enc, img, format); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
