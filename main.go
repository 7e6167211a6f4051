package main

import (
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/chartanim/api"
	"github.com/matt-g-everett/chartanim/chart"
	"github.com/matt-g-everett/chartanim/stream"
	"github.com/matt-g-everett/chartanim/surface"
	"github.com/spf13/cobra"
)

type app struct {
	configPath string
	Config     stream.Config
	Client     mqtt.Client
	Streamer   *stream.Streamer
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) readConfig() error {
	c, err := stream.ReadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.Config = c
	log.Printf("Config: %d slides, surface %vx%v", len(c.Slides), c.Surface.Width, c.Surface.Height)
	return nil
}

func (a *app) slide(i int) (stream.Slide, error) {
	if i < 0 || i >= len(a.Config.Slides) {
		return stream.Slide{}, fmt.Errorf("slide %d out of range (have %d)", i, len(a.Config.Slides))
	}
	return a.Config.Slides[i], nil
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
}

func (a *app) renderCmd() *cobra.Command {
	var (
		slide    int
		progress float64
		output   string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame of a slide to a PNG or SVG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.slide(slide)
			if err != nil {
				return err
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()

			w, h := a.Config.Extents().Pixels()
			session := chart.NewSession()
			if strings.EqualFold(filepath.Ext(output), ".svg") {
				rec := surface.NewRecorder(w, h)
				session.Setup(s.Data, s.Animation, rec)
				session.RenderFrame(progress)
				surface.WriteSVG(f, rec)
				return f.Close()
			}

			r, err := surface.NewRaster(w, h)
			if err != nil {
				return err
			}
			session.Setup(s.Data, s.Animation, r)
			session.RenderFrame(progress)
			if err := png.Encode(f, r.Image()); err != nil {
				return fmt.Errorf("encode %s: %w", output, err)
			}
			return f.Close()
		},
	}
	cmd.Flags().IntVar(&slide, "slide", 0, "Slide index")
	cmd.Flags().Float64Var(&progress, "progress", 1, "Raw progress in [0, 1]")
	cmd.Flags().StringVarP(&output, "output", "o", "frame.png", "Output file (.png or .svg)")
	return cmd
}

func (a *app) keyframesCmd() *cobra.Command {
	var (
		slide int
		n     int
	)
	cmd := &cobra.Command{
		Use:   "keyframes",
		Short: "Print eased progress values evenly spaced in time",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.slide(slide)
			if err != nil {
				return err
			}
			session := chart.NewSession()
			session.Setup(s.Data, s.Animation, nil)
			return json.NewEncoder(cmd.OutOrStdout()).Encode(session.GenerateKeyframes(n))
		},
	}
	cmd.Flags().IntVar(&slide, "slide", 0, "Slide index")
	cmd.Flags().IntVarP(&n, "count", "n", 10, "Number of keyframes")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var (
		dir    string
		format string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every slide as a numbered frame sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "png" && format != "svg" {
				return fmt.Errorf("invalid format: %s (must be png or svg)", format)
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("create %s: %w", dir, err)
			}

			w, h := a.Config.Extents().Pixels()
			var surf surface.Surface
			if format == "svg" {
				surf = surface.NewRecorder(w, h)
			} else {
				r, err := surface.NewRaster(w, h)
				if err != nil {
					return err
				}
				surf = r
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			count := 0
			err := stream.ExportSlides(ctx, a.Config.Slides, surf, a.Config.Playback.FPS, a.Config.Playback.Hold, func(fr stream.Frame) error {
				count++
				return writeFrame(filepath.Join(dir, fmt.Sprintf("slide%02d_%04d.%s", fr.Slide, fr.Index, format)), fr, surf)
			})
			if err != nil {
				return err
			}
			log.Printf("Exported %d frames to %s", count, dir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "frames", "Output directory")
	cmd.Flags().StringVar(&format, "format", "png", "Frame format: png or svg")
	return cmd
}

func writeFrame(path string, fr stream.Frame, surf surface.Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frame: %w", err)
	}
	defer f.Close()

	if rec, ok := surf.(*surface.Recorder); ok {
		surface.WriteSVG(f, rec)
	} else if err := png.Encode(f, fr.Image); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func (a *app) streamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stream",
		Short: "Play the slides and publish each frame over MQTT",
		RunE: func(cmd *cobra.Command, args []string) error {
			mqtt.ERROR = log.New(os.Stdout, "", 0)

			options := mqtt.NewClientOptions().
				AddBroker(a.Config.Mqtt.URL).
				SetClientID(a.Config.Mqtt.ClientID).
				SetUsername(a.Config.Mqtt.Username).
				SetPassword(a.Config.Mqtt.Password).
				SetKeepAlive(30 * time.Second).
				SetPingTimeout(5 * time.Second).
				SetOnConnectHandler(a.handleOnConnect)
			a.Client = mqtt.NewClient(options)
			if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
				return fmt.Errorf("connect to %s: %w", a.Config.Mqtt.URL, token.Error())
			}
			defer a.Client.Disconnect(250)

			w, h := a.Config.Extents().Pixels()
			r, err := surface.NewRaster(w, h)
			if err != nil {
				return err
			}
			player := stream.NewPlayer(a.Config, chart.NewSession(), r)
			a.Streamer = stream.NewStreamer(a.Config, a.Client, player)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			if err := a.Streamer.Run(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
}

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve frame previews over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := api.NewApi(a.Config)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return server.Serve(ctx)
		},
	}
}

func main() {
	a := newApp()
	rootCmd := &cobra.Command{
		Use:   "chartanim",
		Short: "Render animated charts to frames, MQTT or a preview server",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.readConfig()
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "config.yaml", "YAML config file.")
	rootCmd.AddCommand(a.renderCmd(), a.keyframesCmd(), a.exportCmd(), a.streamCmd(), a.serveCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
