package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func renderComponent(t *testing.T, c templ.Component) string {
	t.Helper()

	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("render error: %v", err)
	}
	return b.String()
}

func TestHomePage(t *testing.T) {
	site := NewSite("Ramstone Creative Solutions", "Auto repair in Lusaka", "/")
	got := renderComponent(t, Home(site))

	for _, want := range []string{
		"<!doctype html>",
		"<title>Ramstone Creative Solutions</title>",
		`content="Auto repair in Lusaka"`,
		"RAMSTONE",
		"Great Professionalism",
		"wa.me/260974622334",
		"tel:+260974622334",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("home page missing %q", want)
		}
	}
}

func TestContactPage_PhoneDialerLink(t *testing.T) {
	site := NewSite("Contact", "", "/contact")
	got := renderComponent(t, Contact(site))

	if strings.Contains(got, "ZgotmplZ") {
		t.Error("a deep link was rejected by the template engine")
	}
	if !strings.Contains(got, `href="tel:+260974622334"`) {
		t.Error("contact page missing the phone dialer link")
	}
}

func TestNavMarksActivePage(t *testing.T) {
	site := NewSite("Contact", "", "/contact")
	got := renderComponent(t, Contact(site))

	if !strings.Contains(got, `href="/contact" class="active"`) {
		t.Error("contact nav entry not marked active")
	}
	if strings.Contains(got, `href="/" class="active"`) {
		t.Error("home nav entry should not be active on the contact page")
	}
}

func TestNavAdminLink(t *testing.T) {
	site := NewSite("Home", "", "/")
	got := renderComponent(t, Home(site))
	if !strings.Contains(got, ">Admin</a>") {
		t.Error("logged-out nav should link to Admin login")
	}

	site.LoggedIn = true
	got = renderComponent(t, Home(site))
	if !strings.Contains(got, ">Dashboard</a>") {
		t.Error("logged-in nav should link to the dashboard")
	}
}

func TestLoginPage(t *testing.T) {
	site := NewSite("Admin Login", "", "/login")
	got := renderComponent(t, Login(site, LoginData{Username: "admin", Error: "Invalid username or password"}))

	for _, want := range []string{
		`name="username"`,
		`name="password"`,
		`value="admin"`,
		"Invalid username or password",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("login page missing %q", want)
		}
	}
}

func TestDashboard(t *testing.T) {
	site := NewSite("Dashboard", "", "/admin")
	data := DashboardData{Documents: []DocumentListItem{
		{ID: "abc123", Kind: "Quotation", Number: "QT-000042", CustomerName: "John Mwansa", Total: 232, Updated: "14/03/2025"},
	}}
	got := renderComponent(t, Dashboard(site, data))

	for _, want := range []string{
		"QT-000042",
		"John Mwansa",
		"K 232.00",
		`href="/admin/documents/abc123/edit"`,
		`hx-delete="/admin/documents/abc123"`,
		`name="kind" value="quotation"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestDashboard_Empty(t *testing.T) {
	site := NewSite("Dashboard", "", "/admin")
	got := renderComponent(t, Dashboard(site, DashboardData{}))

	if !strings.Contains(got, "No documents yet") {
		t.Error("empty dashboard should show the empty state")
	}
}
