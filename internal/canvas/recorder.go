package canvas

// CommandKind identifies a drawing primitive.
type CommandKind int

const (
	CmdBox CommandKind = iota
	CmdDisc
	CmdDot
	CmdFrame
	CmdIcon
	CmdStr
	CmdInvertColor
	CmdSetColor
	CmdSetBitmapMode
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CmdBox:
		return "Box"
	case CmdDisc:
		return "Disc"
	case CmdDot:
		return "Dot"
	case CmdFrame:
		return "Frame"
	case CmdIcon:
		return "Icon"
	case CmdStr:
		return "Str"
	case CmdInvertColor:
		return "InvertColor"
	case CmdSetColor:
		return "SetColor"
	case CmdSetBitmapMode:
		return "SetBitmapMode"
	default:
		return "Unknown"
	}
}

// Command is one recorded draw call. Only the fields relevant to Kind are set.
type Command struct {
	Kind  CommandKind
	X, Y  int
	W, H  int
	R     int
	Icon  Icon
	Text  string
	Color Color
	Alpha bool
}

// Recorder is a Canvas that buffers every call for later replay.
type Recorder struct {
	cmds []Command
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{cmds: make([]Command, 0, 128)}
}

func (r *Recorder) push(c Command) {
	r.cmds = append(r.cmds, c)
}

func (r *Recorder) DrawBox(x, y, w, h int) {
	r.push(Command{Kind: CmdBox, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) DrawDisc(x, y, radius int) {
	r.push(Command{Kind: CmdDisc, X: x, Y: y, R: radius})
}

func (r *Recorder) DrawDot(x, y int) {
	r.push(Command{Kind: CmdDot, X: x, Y: y})
}

func (r *Recorder) DrawFrame(x, y, w, h int) {
	r.push(Command{Kind: CmdFrame, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) DrawIcon(x, y int, icon Icon) {
	r.push(Command{Kind: CmdIcon, X: x, Y: y, Icon: icon})
}

func (r *Recorder) DrawStr(x, y int, s string) {
	r.push(Command{Kind: CmdStr, X: x, Y: y, Text: s})
}

func (r *Recorder) InvertColor() {
	r.push(Command{Kind: CmdInvertColor})
}

func (r *Recorder) SetColor(c Color) {
	r.push(Command{Kind: CmdSetColor, Color: c})
}

func (r *Recorder) SetBitmapMode(alpha bool) {
	r.push(Command{Kind: CmdSetBitmapMode, Alpha: alpha})
}

// Len returns the number of buffered commands.
func (r *Recorder) Len() int {
	return len(r.cmds)
}

// Commands returns a copy of the buffered commands in emission order.
func (r *Recorder) Commands() []Command {
	out := make([]Command, len(r.cmds))
	copy(out, r.cmds)
	return out
}

// Reset discards all buffered commands, keeping the allocation.
func (r *Recorder) Reset() {
	r.cmds = r.cmds[:0]
}

// Replay issues every buffered command to dst in emission order.
func (r *Recorder) Replay(dst Canvas) {
	for _, c := range r.cmds {
		Apply(dst, c)
	}
}

// Apply issues a single command to dst.
func Apply(dst Canvas, c Command) {
	switch c.Kind {
	case CmdBox:
		dst.DrawBox(c.X, c.Y, c.W, c.H)
	case CmdDisc:
		dst.DrawDisc(c.X, c.Y, c.R)
	case CmdDot:
		dst.DrawDot(c.X, c.Y)
	case CmdFrame:
		dst.DrawFrame(c.X, c.Y, c.W, c.H)
	case CmdIcon:
		dst.DrawIcon(c.X, c.Y, c.Icon)
	case CmdStr:
		dst.DrawStr(c.X, c.Y, c.Text)
	case CmdInvertColor:
		dst.InvertColor()
	case CmdSetColor:
		dst.SetColor(c.Color)
	case CmdSetBitmapMode:
		dst.SetBitmapMode(c.Alpha)
	}
}

var _ Canvas = (*Recorder)(nil)
