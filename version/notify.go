package version

import (
	"context"
	"fmt"

	"github.com/deepc-skill/deepc/color"
	"github.com/deepc-skill/deepc/constant"
	"github.com/deepc-skill/deepc/icon"
	"github.com/deepc-skill/deepc/key"
	"github.com/deepc-skill/deepc/log"
	"github.com/deepc-skill/deepc/style"
	"github.com/deepc-skill/deepc/util"
	"github.com/spf13/viper"
)

// Notify prints a banner when a newer release exists.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking for a newer release...", icon.Get(icon.Progress)))
	latest, err := Latest(context.Background())
	erase()
	if err != nil {
		log.Warnf("version check: %s", err)
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/"+constant.Repository+"/releases/tag/v"+latest),
	)
}
