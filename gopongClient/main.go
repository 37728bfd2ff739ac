package main

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"

	"github.com/lguibr/asciiring/helpers"
	"golang.org/x/net/websocket"
	"golang.org/x/sys/unix"
)

// InputMessage mirrors the server's wire format for control updates.
type InputMessage struct {
	Player    int    `json:"player"`
	Direction string `json:"direction"`
}

// Snapshot mirrors the server's per-frame state feed.
type Snapshot struct {
	Phase     string  `json:"phase"`
	Countdown float64 `json:"countdown"`
	Ball      Entity  `json:"ball"`
	Paddle1   Entity  `json:"paddle1"`
	Paddle2   Entity  `json:"paddle2"`
}

// Entity carries the fields shared by the ball and the paddles.
type Entity struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Size   float64 `json:"size"`
	Score  int     `json:"score"`
}

const (
	stageWidth  = 800.0
	stageHeight = 600.0
	frameCols   = 80
	frameRows   = 24
)

func setRawMode(fileDescriptor uintptr) (*unix.Termios, error) {
	terminalSettings, err := unix.IoctlGetTermios(int(fileDescriptor), unix.TCGETS)
	if err != nil {
		return nil, err
	}
	savedTerminalSettings := *terminalSettings
	terminalSettings.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	terminalSettings.Oflag &^= unix.OPOST
	terminalSettings.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	terminalSettings.Cflag &^= unix.CSIZE | unix.PARENB
	terminalSettings.Cflag |= unix.CS8
	terminalSettings.Oflag |= unix.ONLCR

	if err := unix.IoctlSetTermios(int(fileDescriptor), unix.TCSETS, terminalSettings); err != nil {
		return nil, err
	}
	return &savedTerminalSettings, nil
}

// renderFrame draws the snapshot as an ASCII stage for the terminal.
func renderFrame(s Snapshot) string {
	grid := make([][]rune, frameRows)
	for y := range grid {
		grid[y] = make([]rune, frameCols)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}
	for y := 0; y < frameRows; y += 2 {
		grid[y][frameCols/2] = '.'
	}

	drawRect(grid, s.Paddle1.X, s.Paddle1.Y, s.Paddle1.Width, s.Paddle1.Height, '#')
	drawRect(grid, s.Paddle2.X, s.Paddle2.Y, s.Paddle2.Width, s.Paddle2.Height, '#')
	drawRect(grid, s.Ball.X, s.Ball.Y, s.Ball.Size, s.Ball.Size, 'O')

	var out strings.Builder
	fmt.Fprintf(&out, "P1 %d : %d P2\n", s.Paddle1.Score, s.Paddle2.Score)
	switch s.Phase {
	case "startup":
		if s.Countdown > 0 {
			fmt.Fprintf(&out, "Starting in %d...\n", int(math.Ceil(s.Countdown)))
		} else {
			out.WriteString("Press space to start\n")
		}
	case "round_end":
		out.WriteString("Point!\n")
	default:
		out.WriteString("w/s and o/l move, q quits\n")
	}

	border := "+" + strings.Repeat("-", frameCols) + "+\n"
	out.WriteString(border)
	for y := 0; y < frameRows; y++ {
		out.WriteByte('|')
		out.WriteString(string(grid[y]))
		out.WriteString("|\n")
	}
	out.WriteString(border)
	return out.String()
}

func drawRect(grid [][]rune, x, y, w, h float64, glyph rune) {
	x0 := int(x / stageWidth * frameCols)
	x1 := int((x + w) / stageWidth * frameCols)
	y0 := int(y / stageHeight * frameRows)
	y1 := int((y + h) / stageHeight * frameRows)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for gy := y0; gy < y1; gy++ {
		if gy < 0 || gy >= frameRows {
			continue
		}
		for gx := x0; gx < x1; gx++ {
			if gx < 0 || gx >= frameCols {
				continue
			}
			grid[gy][gx] = glyph
		}
	}
}

func main() {
	websocketConnection, err := websocket.Dial("ws://localhost:3001/subscribe", "", "http://localhost/")
	if err != nil {
		fmt.Println("Error connecting to server:", err)
		return
	}
	defer websocketConnection.Close()

	go func() {
		for {
			var snapshot Snapshot
			if err := websocket.JSON.Receive(websocketConnection, &snapshot); err != nil {
				fmt.Println("Error reading from server:", err)
				return
			}
			helpers.ClearScreen()
			fmt.Print(renderFrame(snapshot))
		}
	}()

	savedTerminalSettings, err := setRawMode(os.Stdin.Fd())
	if err != nil {
		fmt.Println("Error setting raw mode:", err)
		return
	}
	defer unix.IoctlSetTermios(int(os.Stdin.Fd()), unix.TCSETS, savedTerminalSettings)

	interruptSignalChannel := make(chan os.Signal, 1)
	signal.Notify(interruptSignalChannel, os.Interrupt)
	go func() {
		<-interruptSignalChannel
		unix.IoctlSetTermios(int(os.Stdin.Fd()), unix.TCSETS, savedTerminalSettings)
		os.Exit(0)
	}()

	// Key map: w/s steer player 1, o/l steer player 2, space starts the
	// match, any other key releases both paddles, q quits.
	for {
		singleByteBuffer := make([]byte, 1)
		if _, err := os.Stdin.Read(singleByteBuffer); err != nil {
			return
		}

		var messages []InputMessage
		switch singleByteBuffer[0] {
		case 'w', 'W':
			messages = []InputMessage{{Player: 1, Direction: "up"}}
		case 's', 'S':
			messages = []InputMessage{{Player: 1, Direction: "down"}}
		case 'o', 'O':
			messages = []InputMessage{{Player: 2, Direction: "up"}}
		case 'l', 'L':
			messages = []InputMessage{{Player: 2, Direction: "down"}}
		case ' ':
			messages = []InputMessage{{Player: 1, Direction: "start"}}
		case 'q', 'Q', 'c', 'C':
			fmt.Println("Quitting game")
			unix.IoctlSetTermios(int(os.Stdin.Fd()), unix.TCSETS, savedTerminalSettings)
			os.Exit(0)
		default:
			messages = []InputMessage{
				{Player: 1, Direction: "none"},
				{Player: 2, Direction: "none"},
			}
		}

		for _, message := range messages {
			if err := websocket.JSON.Send(websocketConnection, message); err != nil {
				fmt.Println("Error sending to server:", err)
				return
			}
		}
	}
}
