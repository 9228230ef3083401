package smhi

// PointResponse is the SMHI PMP3g point forecast payload.
type PointResponse struct {
	ApprovedTime  string      `json:"approvedTime"`
	ReferenceTime string      `json:"referenceTime"`
	Geometry      Geometry    `json:"geometry"`
	TimeSeries    []TimePoint `json:"timeSeries"`
}

// Geometry is GeoJSON; Coordinates holds a single [lon, lat] pair.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// TimePoint is one forecast hour: a UTC timestamp plus an unordered list of
// named parameters.
type TimePoint struct {
	ValidTime  string      `json:"validTime"`
	Parameters []Parameter `json:"parameters"`
}

type Parameter struct {
	Name      string    `json:"name"`
	LevelType string    `json:"levelType"`
	Level     int       `json:"level"`
	Unit      string    `json:"unit"`
	Values    []float64 `json:"values"`
}

// Value resolves the named parameter on this time point. Which parameters are
// present varies with forecast horizon, so absence is not an error here.
func (tp TimePoint) Value(name string) (float64, bool) {
	for _, p := range tp.Parameters {
		if p.Name == name && len(p.Values) > 0 {
			return p.Values[0], true
		}
	}
	return 0, false
}

// Lon and Lat return the grid point SMHI resolved the request to.
func (g Geometry) Lon() (float64, bool) {
	if len(g.Coordinates) == 0 || len(g.Coordinates[0]) < 2 {
		return 0, false
	}
	return g.Coordinates[0][0], true
}

func (g Geometry) Lat() (float64, bool) {
	if len(g.Coordinates) == 0 || len(g.Coordinates[0]) < 2 {
		return 0, false
	}
	return g.Coordinates[0][1], true
}
