package sim

import (
	"strconv"

	"life-sim/internal/core"
)

var _ core.ParameterControlsProvider = (*Controller)(nil)
var _ core.IntParameterSetter = (*Controller)(nil)

// Parameters reports the controller's current values for display.
func (c *Controller) Parameters() core.ParameterSnapshot {
	counters := c.Counters()
	size := c.Size()
	groups := []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				uint64Param("generation", "Generation", counters.Generation),
				uint64Param("alive", "Alive cells", counters.Alive),
			},
		},
		{
			Name: "Driver",
			Params: []core.Parameter{
				intParam("fps", "Ticks per second", c.FPS()),
				boolParam("paused", "Paused", c.Paused()),
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("cols", "Columns", size.W),
				intParam("rows", "Rows", size.H),
				intParam("cell_size", "Cell size", c.CellSize()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

var parameterControls = []core.ParameterControl{
	{Key: "fps", Label: "Ticks per second", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 1000, HasMin: true, HasMax: true},
	{Key: "cols", Label: "Columns", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: core.MaxSide, HasMin: true, HasMax: true},
	{Key: "rows", Label: "Rows", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: core.MaxSide, HasMin: true, HasMax: true},
	{Key: "cell_size", Label: "Cell size", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 256, HasMin: true, HasMax: true},
}

// ParameterControls lists the integer parameters a HUD may adjust.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return append([]core.ParameterControl(nil), parameterControls...)
}

// SetIntParameter updates one adjustable parameter, clamped to its control
// bounds. Unknown keys report false.
func (c *Controller) SetIntParameter(key string, value int) bool {
	var ctrl core.ParameterControl
	found := false
	for _, pc := range parameterControls {
		if pc.Key == key {
			ctrl, found = pc, true
			break
		}
	}
	if !found {
		return false
	}
	value = ctrl.Clamp(value)
	switch key {
	case "fps":
		c.SetFPS(value)
	case "cols":
		c.SetCols(value)
	case "rows":
		c.SetRows(value)
	case "cell_size":
		c.SetCellSize(value)
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func uint64Param(key, label string, value uint64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatUint(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
