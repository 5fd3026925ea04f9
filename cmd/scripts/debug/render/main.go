package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/segmentio/encoding/json"
	"github.com/shishobooks/bottomnav/pkg/auth"
	"github.com/shishobooks/bottomnav/pkg/navbar"
	"github.com/shishobooks/bottomnav/pkg/presets"
	"github.com/shishobooks/bottomnav/pkg/settings"
	"github.com/shishobooks/bottomnav/pkg/stylesheet"
	"github.com/shishobooks/bottomnav/pkg/visibility"
)

func main() {
	log := logger.New()
	ctx := log.WithContext(context.Background())

	var opts struct {
		CSS        bool     `long:"css" description:"Print the generated stylesheet"`
		HTML       bool     `long:"html" description:"Print the rendered navigation markup"`
		URL        string   `short:"u" long:"url" description:"Current URL used to mark the active item" default:"/"`
		Roles      []string `short:"r" long:"role" description:"Viewer role (repeatable)"`
		Preset     string   `short:"p" long:"preset" description:"Apply a preset before printing"`
		Report     bool     `long:"report" description:"Print the fields the sanitizer replaced"`
		Token      string   `long:"token" description:"Print a token for this user id instead of rendering"`
		Secret     string   `long:"secret" env:"JWT_SECRET" description:"Secret used to sign --token"`
		Capability []string `long:"capability" description:"Capability granted by --token (repeatable)" default:"manage_options"`
	}

	args, err := flags.Parse(&opts)
	if err != nil {
		log.Err(err).Fatal("flags parse error")
	}

	if opts.Token != "" {
		if opts.Secret == "" {
			log.Err(errors.New("--secret or JWT_SECRET is required to sign a token")).Fatal("flags error")
		}
		token, err := auth.NewService(opts.Secret).GenerateToken(visibility.User{ID: opts.Token, Roles: roles(opts.Roles)}, opts.Capability...)
		if err != nil {
			log.Err(err).Fatal("token sign error")
		}
		fmt.Println(token)
		return
	}

	if len(args) != 1 {
		fmt.Println("go run ./cmd/scripts/debug/render [--css] [--html] <path/to/export.json>")
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Err(err).Fatal("read file error")
	}
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Err(err).Fatal("settings file is not valid JSON")
	}

	doc, report := settings.SanitizeWithReport(raw)
	if opts.Preset != "" {
		var ok bool
		doc, ok = presets.Load(ctx, "").Apply(doc, opts.Preset)
		if !ok {
			log.Err(errors.Errorf("unknown preset %q", opts.Preset)).Fatal("preset error")
		}
	}

	if opts.Report {
		fmt.Printf("Replaced fields: %s\n", strings.Join(report.Defaulted, ", "))
	}

	// With neither flag, print both.
	if !opts.CSS && !opts.HTML {
		opts.CSS, opts.HTML = true, true
	}
	if opts.CSS {
		fmt.Println(stylesheet.Generate(doc))
	}
	if opts.HTML {
		user := visibility.User{Roles: roles(opts.Roles)}
		if !visibility.ShouldDisplayNavigation(doc, visibility.Context{User: user}) {
			fmt.Println("<!-- navigation hidden for this viewer -->")
			return
		}
		fmt.Println(navbar.NewRenderer(nil).Render(ctx, doc, navbar.Context{CurrentURL: opts.URL, User: user}))
	}
}

func roles(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
