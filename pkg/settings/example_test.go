package settings_test

import (
	"fmt"

	"github.com/matzehuels/readable/pkg/settings"
)

func ExampleStore() {
	store := settings.NewStore(settings.Defaults())
	store.Subscribe(func(s settings.Settings) {
		fmt.Printf("theme=%s size=%s\n", s.Theme, settings.FontSize.Range().Format(s.FontSize))
	})

	store.SetTheme(settings.Midnight)
	store.SetFontSize(30)
	store.SetFontSize(26) // already stored, no notification
	// Output:
	// theme=midnight size=18px
	// theme=midnight size=26px
}

func ExampleParseThemeID() {
	id, err := settings.ParseThemeID("warm")
	if err != nil {
		panic(err)
	}
	fmt.Println(id.Theme().Label, id.Theme().Background)
	// Output: Soft Sepia #f3ecd9
}
