package icon

import (
	"fmt"
	"testing"

	"github.com/deepc-skill/deepc/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		So(icons, ShouldHaveLength, int(Playlist)+1)

		for target := Fail; target <= Playlist; target++ {
			Convey(fmt.Sprintf("Icon %d renders for each variant", target), func() {
				for _, variant := range AvailableVariants() {
					viper.Set(key.IconsVariant, variant)
					So(Get(target), ShouldNotBeEmpty)
				}
			})
		}

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Success), ShouldBeEmpty)
		})

		Convey("It returns empty for an unknown icon", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Icon(999)), ShouldBeEmpty)
		})
	})
}
