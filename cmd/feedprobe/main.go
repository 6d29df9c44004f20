// feedprobe prints one page of the configured feed, for checking API access
// without starting the TUI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/soundfeed/internal/config"
	"github.com/llehouerou/soundfeed/internal/posts"
)

func main() {
	page := flag.Int("page", 1, "page to fetch")
	liked := flag.Bool("liked", false, "fetch liked posts instead of the feed")
	stats := flag.String("stats", "", "print analytics for a post id")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if !cfg.HasAPIConfig() {
		log.Fatal("api.base_url is not set")
	}

	api := cfg.GetAPIConfig()
	client := posts.NewClient(api.BaseURL, api.Token, api.Timeout)
	ctx := context.Background()

	if *stats != "" {
		a, err := client.Analytics(ctx, *stats)
		if err != nil {
			log.Fatalf("Failed to load analytics: %v", err)
		}
		fmt.Printf("views %s  likes %s  comments %s  downloads %s\n",
			humanize.Comma(int64(a.Views)), humanize.Comma(int64(a.Likes)),
			humanize.Comma(int64(a.Comments)), humanize.Comma(int64(a.Downloads)))
		return
	}

	fetch := client.Feed
	if *liked {
		fetch = client.Liked
	}
	p, err := fetch(ctx, *page)
	if err != nil {
		log.Fatalf("Failed to load page %d: %v", *page, err)
	}

	fmt.Printf("page %d/%d, %d posts\n", p.Page, p.TotalPages, p.Total)
	for _, post := range p.Items {
		fmt.Fprintf(os.Stdout, "%-24s %-32s %-20s %8s views  %s\n",
			post.ID, post.Title, post.Author.Name,
			humanize.Comma(int64(post.Views)), strings.Join(post.Genres, ","))
	}
}
