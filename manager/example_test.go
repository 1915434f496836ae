// SPDX-License-Identifier: MIT
package manager_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/roadnet/manager"
)

// ExampleManager_GetPath loads a small network from text and asks for a route.
func ExampleManager_GetPath() {
	m := manager.New()
	_, _ = m.Populate(strings.NewReader(`
# road,miles;from;to
Coast Road,12;Harbor;Cliffs
Hill Pass,5;Harbor;Summit
Ridge Way,4;Summit;Cliffs
`))

	for _, step := range m.GetPath("Harbor", "Cliffs") {
		fmt.Println(step)
	}
	fmt.Println(m.AllTowns())
	// Output:
	// Harbor via Hill Pass to Summit 5 mi
	// Summit via Ridge Way to Cliffs 4 mi
	// [Cliffs Harbor Summit]
}
