package scaffold

import (
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
)

// Help generates the list of SCAFFOLD_* variables read by both build
// modes along with their defaults.
func Help() string {
	groups := make([]settings.Group, 0, 3)
	for _, c := range []interface{}{NewAppComponent(), runhttp.NewComponent(), NewLambdaComponent(nil)} {
		grp, err := settings.GroupFromComponent(c)
		if err != nil {
			continue
		}
		groups = append(groups, grp)
	}
	return settings.ExampleEnvGroups([]settings.Group{&settings.SettingGroup{
		NameValue:   "SCAFFOLD",
		GroupValues: groups,
	}})
}
