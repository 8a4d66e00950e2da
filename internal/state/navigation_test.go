package state

import "testing"

func TestNavigation_ZeroValueIsClassifier(t *testing.T) {
	var n Navigation
	if n.Active != ViewClassifier || n.MenuOpen {
		t.Fatalf("zero Navigation = %+v, want classifier with menu closed", n)
	}
}

func TestNavigation_SelectViewIsIdempotent(t *testing.T) {
	var n Navigation
	n.SelectView(ViewClassifier, false)
	if want := (Navigation{Active: ViewClassifier}); n != want {
		t.Fatalf("got %+v, want %+v", n, want)
	}

	n.MenuOpen = true
	n.SelectView(ViewClassifier, false)
	if want := (Navigation{Active: ViewClassifier, MenuOpen: true}); n != want {
		t.Fatalf("tab selection touched the menu: got %+v", n)
	}

	n.SelectView(ViewClassifier, true)
	if want := (Navigation{Active: ViewClassifier}); n != want {
		t.Fatalf("menu selection left the menu open: got %+v", n)
	}
}

func TestNavigation_ToggleMenuThenSelectAbout(t *testing.T) {
	var n Navigation
	n.ToggleMenu()
	if !n.MenuOpen || n.Active != ViewClassifier {
		t.Fatalf("after toggle = %+v", n)
	}

	n.SelectView(ViewAbout, true)
	if n.Active != ViewAbout || n.MenuOpen {
		t.Fatalf("after menu selection = %+v, want About with menu closed", n)
	}
}

func TestNavigation_ToggleMenuDoesNotChangeView(t *testing.T) {
	n := Navigation{Active: ViewAbout}
	n.ToggleMenu()
	n.ToggleMenu()
	if want := (Navigation{Active: ViewAbout}); n != want {
		t.Fatalf("got %+v, want %+v", n, want)
	}
}

func TestNavigation_UnknownViewIgnored(t *testing.T) {
	n := Navigation{Active: ViewAbout, MenuOpen: true}
	n.SelectView(View(42), true)
	if want := (Navigation{Active: ViewAbout, MenuOpen: true}); n != want {
		t.Fatalf("got %+v, want %+v", n, want)
	}
}

func TestNavigation_NextPrevWrap(t *testing.T) {
	var n Navigation
	steps := []struct {
		move func()
		want View
	}{
		{n.NextView, ViewAbout},
		{n.NextView, ViewClassifier},
		{n.PrevView, ViewAbout},
	}
	for i, step := range steps {
		step.move()
		if n.Active != step.want {
			t.Fatalf("step %d: active = %s, want %s", i, n.Active, step.want)
		}
	}
}

func TestViewTitles(t *testing.T) {
	if got := ViewClassifier.Title(); got != "Spam Classifier" {
		t.Fatalf("ViewClassifier.Title() = %q", got)
	}
	if got := ViewAbout.Title(); got != "About" {
		t.Fatalf("ViewAbout.Title() = %q", got)
	}
	if got := ViewAbout.String(); got != "about" {
		t.Fatalf("ViewAbout.String() = %q", got)
	}
}
