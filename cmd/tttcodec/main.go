// Command tttcodec drives the board stream codec from the command line.
//
// Usage:
//
//	tttcodec simulate -games N [-epsilon E] -out FILE   generate self-play boards
//	tttcodec roundtrip -games N                          encode/decode sweep, report sizes
//	tttcodec send -addr HOST:PORT -in FILE               encode a board file and send it
//	tttcodec serve -addr HOST:PORT -out FILE             receive a frame and decode it
package main

import (
	"context"
	"encoding/gob"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pixeldrift/tttcodec"
	"github.com/pixeldrift/tttcodec/game"
	"github.com/pixeldrift/tttcodec/transport"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "simulate":
		err = runSimulate(os.Args[2:])
	case "roundtrip":
		err = runRoundtrip(os.Args[2:])
	case "send":
		err = runSend(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "tttcodec: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "tttcodec: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  tttcodec simulate -games N [-epsilon E] -out FILE
  tttcodec roundtrip -games N
  tttcodec send -addr HOST:PORT -in FILE
  tttcodec serve -addr HOST:PORT -out FILE
`)
}

// writeBoardFile and readBoardFile handle the on-disk representation used
// by simulate/send/serve: a gob-encoded BoardStream. It exists only so the CLI has something to read
// and write; the wire format exchanged by send/serve is the codec's Frame.
func writeBoardFile(path string, boards tttcodec.BoardStream) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(boards)
}

func readBoardFile(path string) (tttcodec.BoardStream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var boards tttcodec.BoardStream
	if err := gob.NewDecoder(f).Decode(&boards); err != nil {
		return nil, err
	}
	return boards, nil
}

// --- simulate ---

func runSimulate(args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	games := fs.Int("games", 100, "number of self-play games to generate")
	epsilon := fs.Float64("epsilon", 0.2, "probability of a random move")
	out := fs.String("out", "", "output board file (gob-encoded)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("simulate: -out is required")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	gameList := game.SimulateGames(rng, *games, *epsilon)
	boards := game.Flatten(gameList)

	if err := writeBoardFile(*out, boards); err != nil {
		return fmt.Errorf("simulate: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Generated %d games, %d boards -> %s\n", *games, len(boards), *out)
	return nil
}

// --- roundtrip ---

func runRoundtrip(args []string) error {
	fs := flag.NewFlagSet("roundtrip", flag.ContinueOnError)
	games := fs.Int("games", 1000, "number of self-play games per epsilon")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i <= 10; i++ {
		epsilon := float64(i) / 10.0
		fmt.Printf("Games: %d\n", *games)
		fmt.Printf("Epsilon: %.1f\n", epsilon)

		boards := game.Flatten(game.SimulateGames(rng, *games, epsilon))
		if err := reportRoundTrip(boards); err != nil {
			return err
		}
	}
	return nil
}

func reportRoundTrip(boards tttcodec.BoardStream) error {
	originalBits := float64(len(boards)) * 9 * 8
	buf := tttcodec.Encode(boards)
	compressedBits := float64(len(buf)) * 8

	decoded, err := tttcodec.Decode(buf)
	if err != nil {
		return fmt.Errorf("roundtrip: decode: %w", err)
	}
	if len(decoded) != len(boards) {
		return fmt.Errorf("roundtrip: board count mismatch: got %d, want %d", len(decoded), len(boards))
	}
	for i := range boards {
		if decoded[i] != boards[i] {
			return fmt.Errorf("roundtrip: board %d mismatch", i)
		}
	}

	ratio := 0.0
	if originalBits > 0 {
		ratio = (1 - compressedBits/originalBits) * 100.0
	}
	fmt.Printf("Boards: %d\n", len(boards))
	fmt.Printf("Frame size: %d bytes\n", len(buf))
	fmt.Printf("Compression ratio: %.2f%%\n", ratio)
	fmt.Println("Round trip test was successful.")
	fmt.Println()
	return nil
}

// --- send / serve ---

func runSend(args []string) error {
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	addr := fs.String("addr", "", "host:port to connect to")
	in := fs.String("in", "", "input board file (gob-encoded)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *addr == "" || *in == "" {
		return fmt.Errorf("send: -addr and -in are required")
	}

	boards, err := readBoardFile(*in)
	if err != nil {
		return fmt.Errorf("send: %w", err)
	}
	frame := tttcodec.Encode(boards)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := transport.Send(ctx, *addr, frame); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Sent %d boards (%d bytes) to %s\n", len(boards), len(frame), *addr)
	return nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", "", "host:port to listen on")
	out := fs.String("out", "", "output board file (gob-encoded)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *addr == "" || *out == "" {
		return fmt.Errorf("serve: -addr and -out are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	frame, err := transport.Receive(ctx, *addr)
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	boards, err := tttcodec.Decode(frame)
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	if err := writeBoardFile(*out, boards); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Received %d bytes, decoded %d boards -> %s\n", len(frame), len(boards), *out)
	return nil
}
