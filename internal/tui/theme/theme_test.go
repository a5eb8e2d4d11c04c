package theme

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestThemesSetEveryRole(t *testing.T) {
	for _, th := range All {
		v := reflect.ValueOf(th)
		for i := 0; i < v.NumField(); i++ {
			f := v.Type().Field(i)
			if f.Type != reflect.TypeOf(lipgloss.Color("")) {
				continue
			}
			if v.Field(i).String() == "" {
				t.Errorf("theme %s: role %s is empty", th.Name, f.Name)
			}
		}
	}
}

func TestByNameFallsBackToDefault(t *testing.T) {
	if got := ByName("tokyo-night").Name; got != "tokyo-night" {
		t.Fatalf("ByName(tokyo-night) = %s", got)
	}
	if got := ByName("missing").Name; got != FlexokiDark.Name {
		t.Fatalf("ByName(missing) = %s, want %s", got, FlexokiDark.Name)
	}
}
