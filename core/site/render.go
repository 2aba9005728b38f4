package site

type (
	// StyleBundle is the fixed set of style classes a theme mode resolves to.
	StyleBundle struct {
		Background string `json:"background"`
		Text       string `json:"text"`
		Font       string `json:"font,omitempty"`
	}

	// Node is one element of the rendered display tree.
	Node struct {
		Kind     string            `json:"kind"`
		Text     string            `json:"text,omitempty"`
		Attrs    map[string]string `json:"attrs,omitempty"`
		Children []Node            `json:"children,omitempty"`
	}

	// Page is the rendered public site / live preview: the resolved theme
	// bundle plus an ordered section tree. It is produced by Render and is
	// fully determined by the configuration passed in.
	Page struct {
		Style      StyleBundle `json:"style"`
		FontFamily string      `json:"fontFamily"`
		Sections   []Node      `json:"sections"`
	}
)

var (
	defaultStyleBundle = StyleBundle{Background: "bg-white", Text: "text-neutral-900"}

	// Theme bundles are hardcoded per mode; modern and gradient currently
	// share the default bundle, matching the shipped visual behavior.
	styleBundles = map[ThemeMode]StyleBundle{
		ThemeClassic:  {Background: "bg-slate-50", Text: "text-slate-900", Font: "font-serif"},
		ThemeMinimal:  {Background: "bg-white", Text: "text-neutral-900", Font: "font-light"},
		ThemeModern:   defaultStyleBundle,
		ThemeDark:     {Background: "bg-neutral-950", Text: "text-white"},
		ThemeGradient: defaultStyleBundle,
	}
)

// ResolveStyleBundle maps a theme mode to its style bundle; any unknown or
// missing mode resolves to the default (light) bundle.
func ResolveStyleBundle(mode ThemeMode) StyleBundle {
	if bundle, ok := styleBundles[mode]; ok {
		return bundle
	}
	return defaultStyleBundle
}

// Render maps a configuration to its display tree. It is a pure function
// with no hidden state: it runs on every editor keystroke for the live
// preview and serves the public site payload.
//
// Section order is fixed: header, hero, about, academics, contact, footer.
// Header and footer always render; the middle sections render when their
// visibility flag is set, even when their content is empty (explicit
// placeholder nodes, never silent omission). Gallery and testimonials have
// visibility flags in the data model but no rendered section yet.
func Render(cfg WebsiteConfig) Page {
	primary := fallback(cfg.Branding.PrimaryColor, DefaultPrimaryColor)
	secondary := fallback(cfg.Branding.SecondaryColor, DefaultSecondaryColor)
	accent := fallback(cfg.Branding.AccentColor, DefaultAccentColor)
	dark := cfg.Theme.Mode == ThemeDark

	sections := make([]Node, 0, 6)
	sections = append(sections, renderHeader(cfg, primary, accent, dark))
	if cfg.Visibility.Hero {
		sections = append(sections, renderHero(cfg.Homepage.Hero, accent, dark))
	}
	if cfg.Visibility.About {
		sections = append(sections, renderAbout(cfg.Homepage.About, primary))
	}
	if cfg.Visibility.Academics {
		sections = append(sections, renderAcademics(cfg.Homepage.Academics, primary, dark))
	}
	if cfg.Visibility.Contact {
		sections = append(sections, renderContact(cfg.Contact, primary, secondary, dark))
	}
	sections = append(sections, renderFooter(cfg, dark))

	return Page{
		Style:      ResolveStyleBundle(cfg.Theme.Mode),
		FontFamily: fallback(cfg.Branding.FontStyle, "Inter"),
		Sections:   sections,
	}
}

func renderHeader(cfg WebsiteConfig, primary, accent string, dark bool) Node {
	headerBg := "rgba(255, 255, 255, 0.8)"
	if dark {
		headerBg = "rgba(10, 10, 10, 0.8)"
	}

	children := make([]Node, 0, len(cfg.Navigation.Links)+3)
	if cfg.Branding.Logo != "" {
		children = append(children, Node{Kind: "logo", Attrs: attrs("src", cfg.Branding.Logo)})
	} else {
		children = append(children, Node{Kind: "logoPlaceholder", Attrs: attrs("background", primary)})
	}
	children = append(children, Node{Kind: "title", Text: fallback(cfg.Branding.SchoolName, "School Name")})
	for _, link := range cfg.Navigation.Links {
		children = append(children, Node{Kind: "link", Text: link.Label, Attrs: attrs("href", link.Href)})
	}
	children = append(children, Node{
		Kind:  "button",
		Text:  "Apply Now",
		Attrs: attrs("background", accent, "color", "#ffffff"),
	})

	return Node{
		Kind:     "header",
		Attrs:    attrs("borderColor", primary+"20", "background", headerBg),
		Children: children,
	}
}

func renderHero(hero Hero, accent string, dark bool) Node {
	children := make([]Node, 0, 4)

	// A background image gets a dark scrim and flips the copy to light text,
	// independent of theme mode.
	textColor := "inherit"
	subColor := "inherit"
	if hero.BgImage != "" {
		overlay := "bg-black/50"
		if dark {
			overlay = "bg-black/70"
		}
		children = append(children, Node{
			Kind:  "background",
			Attrs: attrs("image", hero.BgImage, "overlay", overlay),
		})
		textColor = "white"
		subColor = "rgba(255,255,255,0.9)"
	}

	children = append(children,
		Node{Kind: "heading", Text: hero.Title, Attrs: attrs("color", textColor)},
		Node{Kind: "subheading", Text: hero.Subtitle, Attrs: attrs("color", subColor)},
		Node{
			Kind:  "button",
			Text:  hero.CTAText,
			Attrs: attrs("background", accent, "color", "#ffffff", "href", hero.CTALink),
		},
	)
	return Node{Kind: "hero", Children: children}
}

func renderAbout(about About, primary string) Node {
	imageNode := Node{Kind: "imagePlaceholder", Text: "No Image Uploaded"}
	if about.Image != "" {
		imageNode = Node{Kind: "image", Attrs: attrs("src", about.Image)}
	}
	return Node{
		Kind: "about",
		Children: []Node{
			{Kind: "heading", Text: "About Us", Attrs: attrs("color", primary)},
			{Kind: "paragraph", Text: about.Description},
			{Kind: "card", Text: "Our Vision", Attrs: attrs("borderColor", primary + "20"), Children: []Node{
				{Kind: "paragraph", Text: about.Vision},
			}},
			{Kind: "card", Text: "Our Mission", Attrs: attrs("borderColor", primary + "20"), Children: []Node{
				{Kind: "paragraph", Text: about.Mission},
			}},
			imageNode,
		},
	}
}

func renderAcademics(programs []AcademicProgram, primary string, dark bool) Node {
	sectionBg := "bg-neutral-50"
	cardBg := "bg-white"
	if dark {
		sectionBg = "bg-neutral-900"
		cardBg = "bg-neutral-800"
	}

	children := []Node{
		{Kind: "heading", Text: "Academic Programs", Attrs: attrs("color", primary)},
		{Kind: "paragraph", Text: "Discover the wide range of educational programs we offer to nurture every student's potential."},
	}
	if len(programs) == 0 {
		children = append(children, Node{Kind: "empty", Text: "No academic programs added yet."})
	}
	for _, prog := range programs {
		card := Node{Kind: "card", Attrs: attrs("id", prog.ID, "background", cardBg)}
		if prog.Image != "" {
			card.Children = append(card.Children, Node{Kind: "image", Attrs: attrs("src", prog.Image)})
		}
		card.Children = append(card.Children,
			Node{Kind: "heading", Text: prog.Title},
			Node{Kind: "paragraph", Text: prog.Description},
		)
		children = append(children, card)
	}

	return Node{Kind: "academics", Attrs: attrs("background", sectionBg), Children: children}
}

func renderContact(contact Contact, primary, secondary string, dark bool) Node {
	children := []Node{
		{Kind: "heading", Text: "Get in Touch", Attrs: attrs("color", primary)},
		{Kind: "paragraph", Text: "Have questions? We'd love to hear from you. Reach out to us using the contact details below."},
		{Kind: "entry", Text: contact.Email, Attrs: attrs("label", "Email Us", "color", primary)},
		{Kind: "entry", Text: contact.Phone, Attrs: attrs("label", "Call Us", "color", primary)},
		{Kind: "entry", Text: contact.Address, Attrs: attrs("label", "Visit Us", "color", primary)},
	}

	// Only networks with a value render an icon; whatsapp is stored but has
	// no icon on the page yet.
	for _, social := range []struct{ network, href string }{
		{"facebook", contact.Socials.Facebook},
		{"instagram", contact.Socials.Instagram},
		{"twitter", contact.Socials.Twitter},
	} {
		if social.href != "" {
			children = append(children, Node{Kind: "social", Attrs: attrs("network", social.network, "href", social.href)})
		}
	}

	formBg := "bg-neutral-50"
	if dark {
		formBg = "bg-neutral-900"
	}
	children = append(children, Node{
		Kind:  "form",
		Attrs: attrs("background", formBg),
		Children: []Node{
			{Kind: "field", Text: "First Name"},
			{Kind: "field", Text: "Last Name"},
			{Kind: "field", Text: "Email"},
			{Kind: "field", Text: "Message"},
			{Kind: "button", Text: "Send Message", Attrs: attrs("background", primary, "color", secondary)},
		},
	})

	return Node{Kind: "contact", Children: children}
}

func renderFooter(cfg WebsiteConfig, dark bool) Node {
	footerBg := "bg-neutral-100"
	borderColor := "border-neutral-200"
	if dark {
		footerBg = "bg-neutral-950"
		borderColor = "border-neutral-800"
	}

	children := make([]Node, 0, len(cfg.Navigation.Links)+4)
	if cfg.Branding.Logo != "" {
		children = append(children, Node{Kind: "logo", Attrs: attrs("src", cfg.Branding.Logo)})
	}
	children = append(children,
		Node{Kind: "title", Text: cfg.Branding.SchoolName},
		Node{Kind: "paragraph", Text: cfg.Footer.Text},
	)
	for _, link := range cfg.Navigation.Links {
		children = append(children, Node{Kind: "link", Text: link.Label, Attrs: attrs("href", link.Href)})
	}
	children = append(children, Node{Kind: "copyright", Text: cfg.Footer.Copyright})

	return Node{
		Kind:     "footer",
		Attrs:    attrs("background", footerBg, "borderColor", borderColor),
		Children: children,
	}
}

func fallback(val, def string) string {
	if val == "" {
		return def
	}
	return val
}

func attrs(kv ...string) map[string]string {
	m := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	return m
}
