package cli

import (
	"fmt"

	"github.com/manifoldco/promptui"

	"pfeifer.dev/trackd/route"
)

// selectWay lists the named ways in the pbf file and prompts for one.
func selectWay(inputFile string) (int64, error) {
	ways, err := route.ListWays(inputFile)
	if err != nil {
		return 0, err
	}
	if len(ways) == 0 {
		return 0, fmt.Errorf("no named ways in %s", inputFile)
	}

	items := make([]string, len(ways))
	for i, w := range ways {
		items[i] = fmt.Sprintf("%s (%d, %.0fm)", w.Name, w.ID, w.Length)
	}

	prompt := promptui.Select{
		Label: "Select Way",
		Items: items,
		Size:  10,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return 0, fmt.Errorf("prompt failed %v", err)
	}
	return ways[i].ID, nil
}
