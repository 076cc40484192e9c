// Dev/ops command line client for the Talkam API. Useful for smoke-testing
// an environment and for submitting or draining reports from a terminal.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/QuaresmaHarygens/Talkam/client"
	"github.com/QuaresmaHarygens/Talkam/config"
	"github.com/QuaresmaHarygens/Talkam/drafts"
	"github.com/QuaresmaHarygens/Talkam/models"
	"github.com/QuaresmaHarygens/Talkam/session"
	"github.com/QuaresmaHarygens/Talkam/submit"
	talkamsync "github.com/QuaresmaHarygens/Talkam/sync"
)

const usage = `usage: talkam <command> [flags]

commands:
  login          authenticate with phone number and password
  anonymous      start an anonymous session for this device
  whoami         show the current session
  submit         validate and submit a report (queues a draft when offline)
  track          look up a report by its RPT tracking id
  reports        search reports
  drafts         list queued offline drafts
  drafts-sync    push queued drafts to the server
  challenges     list community challenges
  notifications  list notifications
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.New()
	tokens, err := session.NewFileTokenStore(cfg.DataDir)
	if err != nil {
		fatal(err)
	}
	api := client.New(cfg.APIBaseURL, client.WithTokenStore(tokens))
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "login":
		cmdLogin(ctx, api, os.Args[2:])
	case "anonymous":
		cmdAnonymous(ctx, api, cfg, os.Args[2:])
	case "whoami":
		cmdWhoami(ctx, api, tokens)
	case "submit":
		cmdSubmit(ctx, api, cfg, os.Args[2:])
	case "track":
		cmdTrack(ctx, api, os.Args[2:])
	case "reports":
		cmdReports(ctx, api, os.Args[2:])
	case "drafts":
		cmdDrafts(cfg)
	case "drafts-sync":
		cmdDraftsSync(ctx, api, cfg)
	case "challenges":
		cmdChallenges(ctx, api, os.Args[2:])
	case "notifications":
		cmdNotifications(ctx, api)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func cmdLogin(ctx context.Context, api *client.Client, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	phone := fs.String("phone", "", "phone number")
	password := fs.String("password", "", "password")
	fs.Parse(args)
	if *phone == "" || *password == "" {
		fatal(fmt.Errorf("login requires -phone and -password"))
	}

	tokens, err := api.Login(ctx, models.LoginRequest{Phone: *phone, Password: *password})
	if err != nil {
		fatal(err)
	}
	fmt.Printf("logged in, roles: %v\n", tokens.Roles)
}

func cmdAnonymous(ctx context.Context, api *client.Client, cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("anonymous", flag.ExitOnError)
	county := fs.String("county", "", "home county")
	fs.Parse(args)

	hash, err := session.DeviceHash(cfg.DataDir)
	if err != nil {
		fatal(err)
	}
	resp, err := api.AnonymousStart(ctx, models.AnonymousStartRequest{
		DeviceHash:   hash,
		County:       *county,
		Capabilities: []string{"offline-queue"},
	})
	if err != nil {
		fatal(err)
	}
	fmt.Printf("anonymous session started, offline queue limit %d\n", resp.OfflineQueueLimit)
}

func cmdWhoami(ctx context.Context, api *client.Client, tokens client.TokenStore) {
	token := tokens.Token()
	if token == "" {
		fmt.Println("not logged in")
		return
	}
	if session.Expired(token) {
		fmt.Println("session expired, log in again")
		return
	}
	fmt.Printf("logged in as %s\n", session.Subject(token))
}

func cmdSubmit(ctx context.Context, api *client.Client, cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	category := fs.String("category", "", "report category")
	severity := fs.String("severity", "medium", "report severity")
	summary := fs.String("summary", "", "what happened")
	county := fs.String("county", "", "county")
	district := fs.String("district", "", "district")
	lat := fs.Float64("lat", 0, "latitude")
	lng := fs.Float64("lng", 0, "longitude")
	anonymous := fs.Bool("anonymous", false, "submit anonymously")
	fs.Parse(args)

	data := models.DraftData{
		Category:  *category,
		Severity:  *severity,
		Summary:   *summary,
		County:    *county,
		District:  *district,
		Latitude:  *lat,
		Longitude: *lng,
		Anonymous: *anonymous,
	}
	for _, path := range fs.Args() {
		content, err := os.ReadFile(path)
		if err != nil {
			fatal(err)
		}
		data.Files = append(data.Files, models.DraftFile{
			Name: filepath.Base(path),
			Type: mimeFor(path),
			Size: int64(len(content)),
			Data: content,
		})
	}

	if errs := submit.Validate(data); errs != nil {
		fatal(errs)
	}

	flow := submit.NewFlow(api, data, "")
	report, err := flow.Run(ctx)
	if err != nil {
		var apiErr *client.APIError
		if !errors.As(err, &apiErr) {
			// offline: queue the draft for the background sync instead
			store, openErr := drafts.Open(filepath.Join(cfg.DataDir, "drafts.db"))
			if openErr != nil {
				fatal(openErr)
			}
			defer store.Close()
			id, saveErr := store.SaveDraft(data)
			if saveErr != nil {
				fatal(saveErr)
			}
			fmt.Printf("network unavailable, report saved as draft %d\n", id)
			return
		}
		fatal(err)
	}
	fmt.Printf("report submitted, tracking id %s\n", report.ReportID)
}

func cmdTrack(ctx context.Context, api *client.Client, args []string) {
	if len(args) != 1 {
		fatal(fmt.Errorf("track requires exactly one tracking id"))
	}
	if !submit.ValidReportID(args[0]) {
		fatal(fmt.Errorf("invalid report id %q, expected RPT-YYYY-XXXXXX", args[0]))
	}
	info, err := api.TrackReport(ctx, args[0])
	if err != nil {
		fatal(err)
	}
	printJSON(info)
}

func cmdReports(ctx context.Context, api *client.Client, args []string) {
	fs := flag.NewFlagSet("reports", flag.ExitOnError)
	category := fs.String("category", "", "filter by category")
	severity := fs.String("severity", "", "filter by severity")
	county := fs.String("county", "", "filter by county")
	status := fs.String("status", "", "filter by status")
	text := fs.String("text", "", "full text search")
	page := fs.Int("page", 1, "page number")
	fs.Parse(args)

	resp, err := api.SearchReports(ctx, client.ReportSearchParams{
		Category: *category,
		Severity: *severity,
		County:   *county,
		Status:   *status,
		Text:     *text,
		Page:     *page,
	})
	if err != nil {
		fatal(err)
	}
	for _, rep := range resp.Results {
		fmt.Printf("%s  %-14s %-8s %-12s %s\n", rep.ID, rep.Category, rep.Severity, rep.Status, rep.County)
	}
	fmt.Printf("page %d of %d (%d reports)\n", resp.Page, resp.TotalPages, resp.Total)
}

func cmdDrafts(cfg *config.Config) {
	store, err := drafts.Open(filepath.Join(cfg.DataDir, "drafts.db"))
	if err != nil {
		fatal(err)
	}
	defer store.Close()

	all, err := store.GetDrafts()
	if err != nil {
		fatal(err)
	}
	if len(all) == 0 {
		fmt.Println("no queued drafts")
		return
	}
	for _, d := range all {
		created := time.UnixMilli(d.Timestamp).Format(time.RFC3339)
		fmt.Printf("%d  %s  %-14s %s\n", d.ID, created, d.Data.Category, d.Data.Summary)
	}
}

func cmdDraftsSync(ctx context.Context, api *client.Client, cfg *config.Config) {
	store, err := drafts.Open(filepath.Join(cfg.DataDir, "drafts.db"))
	if err != nil {
		fatal(err)
	}
	defer store.Close()

	syncer := talkamsync.New(api, store)
	synced, err := syncer.Drain(ctx)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("synced %d draft(s)\n", synced)
}

func cmdChallenges(ctx context.Context, api *client.Client, args []string) {
	fs := flag.NewFlagSet("challenges", flag.ExitOnError)
	lat := fs.Float64("lat", 6.3004, "latitude to search around")
	lng := fs.Float64("lng", -10.7969, "longitude to search around")
	radius := fs.Float64("radius", 25, "search radius in km")
	fs.Parse(args)

	resp, err := api.ListChallenges(ctx, client.ChallengeListParams{Lat: *lat, Lng: *lng, RadiusKM: *radius})
	if err != nil {
		fatal(err)
	}
	for _, c := range resp.Challenges {
		fmt.Printf("%-30s %-10s %3.0f%%  %d joined\n", c.Title, c.Status, c.ProgressPercentage, c.ParticipantsCount)
	}
}

func cmdNotifications(ctx context.Context, api *client.Client) {
	notifications, err := api.Notifications(ctx, client.NotificationParams{})
	if err != nil {
		fatal(err)
	}
	for _, n := range notifications {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Printf("%s %-20s %s\n", marker, n.Type, n.Title)
	}
}

func mimeFor(path string) string {
	switch filepath.Ext(path) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".mp4":
		return "video/mp4"
	case ".mp3":
		return "audio/mpeg"
	case ".m4a":
		return "audio/mp4"
	default:
		return "application/octet-stream"
	}
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "talkam:", err)
	os.Exit(1)
}
