package foodweb

// DefaultLayout is the hand-tuned coordinate table for the bundled
// trophic network. Y equals trophic level * 100, so vertical position is
// monotone in trophic level; X slots are spread to avoid overlap within
// each band. NewNetwork rejects any node missing from this table, which
// is what keeps it in sync when nodes are added.
func DefaultLayout() map[string]Position {
	return map[string]Position{
		"phytoplankton": {X: 500, Y: 100},
		"calanus":       {X: 330, Y: 200},
		"centropages":   {X: 500, Y: 200},
		"krill":         {X: 670, Y: 200},
		"lobster":       {X: 160, Y: 280},
		"sandlance":     {X: 620, Y: 300},
		"rightwhale":    {X: 120, Y: 310},
		"herring":       {X: 420, Y: 320},
		"mackerel":      {X: 760, Y: 340},
		"squid":         {X: 880, Y: 360},
		"blackseabass":  {X: 80, Y: 390},
		"puffin":        {X: 300, Y: 400},
		"humpback":      {X: 540, Y: 400},
		"cod":           {X: 200, Y: 420},
		"seals":         {X: 680, Y: 440},
		"tuna":          {X: 840, Y: 450},
	}
}
