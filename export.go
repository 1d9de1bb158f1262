package cosmographia

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/soniakeys/meeus/julian"
)

// CgCatalog definition.
type CgCatalog struct {
	Version string     `json:"version"`
	Name    string     `json:"name"`
	Items   []*CgItems `json:"items"`
	Require []string   `json:"require,omitempty"`
}

func (c *CgCatalog) String() string {
	return c.Name + "(" + c.Version + ")"
}

// CgItems definition.
type CgItems struct {
	Class           string            `json:"class"`
	Name            string            `json:"name"`
	StartTime       string            `json:"startTime"`
	EndTime         string            `json:"endTime"`
	Center          string            `json:"center"`
	TrajectoryFrame string            `json:"trajectoryFrame"`
	Trajectory      *CgTrajectory     `json:"trajectory,omitempty"`
	Bodyframe       *CgBodyFrame      `json:"bodyFrame,omitempty"`
	Geometry        *CgGeometry       `json:"geometry,omitempty"`
	Label           *CgLabel          `json:"label,omitempty"`
	TrajectoryPlot  *CgTrajectoryPlot `json:"trajectoryPlot,omitempty"`
}

// CgTrajectory definition.
type CgTrajectory struct {
	Type   string `json:"type,omitempty"`
	Source string `json:"source,omitempty"`
}

// Validate validates a CgTrajectory.
func (t *CgTrajectory) Validate() error {
	if t.Type != "InterpolatedStates" || !strings.HasSuffix(t.Source, "xyzv") {
		return fmt.Errorf("only InterpolatedStates trajectories from xyzv files are supported")
	}
	return nil
}

func (t *CgTrajectory) String() string {
	return t.Source + " as " + t.Type
}

// CgBodyFrame definition.
type CgBodyFrame struct {
	Type string `json:"type,omitempty"`
	Name string `json:"name,omitempty"`
}

func (c *CgBodyFrame) String() string {
	return c.Name + " (type: " + c.Type + ")"
}

// CgGeometry definition.
type CgGeometry struct {
	Type   string    `json:"type,omitempty"`
	Mesh   []float64 `json:"meshRotation,omitempty"`
	Size   float64   `json:"size,omitempty"`
	Source string    `json:"source,omitempty"`
}

// CgLabel definition.
type CgLabel struct {
	Color    []float64 `json:"color,omitempty"`
	FadeSize int       `json:"fadeSize,omitempty"`
	ShowText bool      `json:"showText,omitempty"`
}

func (l *CgLabel) String() string {
	return fmt.Sprintf("color %v, fade %d, show %v", l.Color, l.FadeSize, l.ShowText)
}

// CgTrajectoryPlot definition.
type CgTrajectoryPlot struct {
	Color       []float64 `json:"color,omitempty"`
	LineWidth   int       `json:"lineWidth,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	Lead        string    `json:"lead,omitempty"`
	Fade        int       `json:"fade,omitempty"`
	SampleCount int       `json:"sampleCount,omitempty"`
}

// CgInterpolatedState definition.
type CgInterpolatedState struct {
	JD       float64
	Position []float64
	Velocity []float64
}

// FromText initializes from text.
// The `record` parameter must be an array of seven items.
func (i *CgInterpolatedState) FromText(record []string) {
	if val, err := strconv.ParseFloat(record[0], 64); err != nil {
		panic(err)
	} else {
		i.JD = val
	}

	if posX, err := strconv.ParseFloat(record[1], 64); err != nil {
		panic(err)
	} else if posY, err := strconv.ParseFloat(record[2], 64); err != nil {
		panic(err)
	} else if posZ, err := strconv.ParseFloat(record[3], 64); err != nil {
		panic(err)
	} else {
		i.Position = []float64{posX, posY, posZ}
	}

	if velX, err := strconv.ParseFloat(record[4], 64); err != nil {
		panic(err)
	} else if velY, err := strconv.ParseFloat(record[5], 64); err != nil {
		panic(err)
	} else if velZ, err := strconv.ParseFloat(record[6], 64); err != nil {
		panic(err)
	} else {
		i.Velocity = []float64{velX, velY, velZ}
	}
}

// ToText converts to text for written output.
func (i *CgInterpolatedState) ToText() string {
	return fmt.Sprintf("%f %f %f %f %f %f %f", i.JD, i.Position[0], i.Position[1], i.Position[2], i.Velocity[0], i.Velocity[1], i.Velocity[2])
}

// ParseInterpolatedStates takes a string and converts that into a CgInterpolatedState.
func ParseInterpolatedStates(s string) []*CgInterpolatedState {
	var states = []*CgInterpolatedState{}
	r := csv.NewReader(strings.NewReader(s))
	r.Comma = ' '
	r.Comment = '#'
	for {
		record, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			panic(err)
		}
		state := CgInterpolatedState{}
		state.FromText(record)
		states = append(states, &state)
	}

	return states
}

// ExportConfig configures a trajectory export.
type ExportConfig struct {
	Filename  string
	Cosmo     bool // also write a Cosmographia catalog referencing the xyzv file
	AsCSV     bool // also write the osculating elements as CSV
	Timestamp bool
}

// ExportTrajectory samples the orbit over [start, end] at the provided step
// and writes the states to an interpolated-states xyzv file. A non-positive
// step defaults to 1/360th of the orbital period. Samples whose solve fails
// are skipped and logged: retrying a deterministic computation is pointless,
// so the trajectory layer only decides what to do with the hole.
func ExportTrajectory(orbit *Gust86Orbit, start, end time.Time, step time.Duration, conf ExportConfig) error {
	if step <= 0 {
		step = orbit.Period() / 360
	}
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "trajectory", conf.Filename, "satellite", orbit.Satellite().String())

	f := createInterpolatedFile(conf.Filename, conf.Timestamp, start)
	defer f.Close()
	var csvFile *os.File
	if conf.AsCSV {
		csvFile = createElementsCSVFile(conf.Filename, conf.Timestamp)
		defer csvFile.Close()
	}

	samples, skipped := 0, 0
	for dt := start; !dt.After(end); dt = dt.Add(step) {
		jd := julian.TimeToJD(dt)
		R, V, err := orbit.StateAtJD(jd)
		if err != nil {
			skipped++
			klog.Log("level", "warning", "jd", jd, "err", err)
			continue
		}
		state := CgInterpolatedState{JD: jd, Position: R, Velocity: V}
		if _, err := f.WriteString("\n" + state.ToText()); err != nil {
			return err
		}
		if conf.AsCSV {
			elem := gust86Elements(jd-gust86EpochJD, orbit.Satellite())
			csvFile.WriteString(fmt.Sprintf("%f,%.14f,%.14f,%.14f,%.14f,%.14f,%.14f\n",
				jd, elem[0], elem[1], elem[2], elem[3], elem[4], elem[5]))
		}
		samples++
	}
	klog.Log("level", "info", "samples", samples, "skipped", skipped)

	if conf.Cosmo {
		return writeCatalog(orbit, conf, start, end)
	}
	return nil
}

// writeCatalog writes a Cosmographia catalog with a single item referencing
// the exported xyzv trajectory.
func writeCatalog(orbit *Gust86Orbit, conf ExportConfig, start, end time.Time) error {
	name := orbit.Satellite().String()
	traj := CgTrajectory{Type: "InterpolatedStates", Source: fmt.Sprintf("prop-%s.xyzv", conf.Filename)}
	if err := traj.Validate(); err != nil {
		return err
	}
	label := CgLabel{Color: []float64{0.6, 1, 1}, FadeSize: 1000000, ShowText: true}
	plot := CgTrajectoryPlot{
		Color:       label.Color,
		LineWidth:   1,
		Duration:    fmt.Sprintf("%.1f d", orbit.Period().Hours()/24),
		Lead:        "0 d",
		Fade:        1,
		SampleCount: 1440,
	}
	item := CgItems{
		Class:           "spacecraft",
		Name:            name,
		StartTime:       start.Format(time.RFC3339),
		EndTime:         end.Format(time.RFC3339),
		Center:          Uranus.Name,
		TrajectoryFrame: "EclipticJ2000",
		Trajectory:      &traj,
		Bodyframe:       &CgBodyFrame{Type: "BodyFixed", Name: Uranus.Name},
		Label:           &label,
		TrajectoryPlot:  &plot,
	}
	catalog := CgCatalog{Version: "1.0", Name: name, Items: []*CgItems{&item}}

	fname := fmt.Sprintf("%s/catalog-%s.json", cgConfig().outputDir, conf.Filename)
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(catalog)
}

// createInterpolatedFile returns a file which requires a defer close statement!
func createInterpolatedFile(filename string, stamped bool, stateDT time.Time) *os.File {
	config := cgConfig()
	if stamped {
		t := time.Now()
		filename = fmt.Sprintf("%s/prop-%s-%d-%02d-%02dT%02d.%02d.%02d.xyzv", config.outputDir, filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	} else {
		filename = fmt.Sprintf("%s/prop-%s.xyzv", config.outputDir, filename)
	}
	f, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	// Header
	f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s
# Records are <jd> <x> <y> <z> <vel x> <vel y> <vel z>
#   Time is a TDB Julian date
#   Position in km
#   Velocity in km/sec
#   Simulation time start (UTC): %s`, time.Now(), stateDT.UTC()))
	return f
}

// createElementsCSVFile returns a file which requires a defer close statement!
func createElementsCSVFile(filename string, stamped bool) *os.File {
	config := cgConfig()
	if stamped {
		t := time.Now()
		filename = fmt.Sprintf("%s/orbital-elements-%s-%d-%02d-%02dT%02d.%02d.%02d.csv", config.outputDir, filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	} else {
		filename = fmt.Sprintf("%s/orbital-elements-%s.csv", config.outputDir, filename)
	}
	f, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	f.WriteString("jd,n,L,ex,ey,ix,iy\n")
	return f
}
