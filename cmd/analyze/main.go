package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"comment-lens/internal/insights"
	"comment-lens/internal/models"
	"comment-lens/internal/sentiment"
	"comment-lens/internal/youtube"
	"comment-lens/shared/config"
)

func main() {
	url := flag.String("url", "", "YouTube video URL or ID (required)")
	maxComments := flag.Int("max", 0, "maximum comments to fetch (0 = config default)")
	asJSON := flag.Bool("json", false, "print the raw analysis document as JSON")
	flag.Parse()

	if *url == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	videoID, err := youtube.ExtractVideoID(*url)
	if err != nil {
		log.Fatalf("Failed to resolve video: %v", err)
	}

	client, err := youtube.NewClient(ctx, &cfg.YouTube)
	if err != nil {
		log.Fatalf("Failed to create YouTube client: %v", err)
	}

	max := *maxComments
	if max == 0 {
		max = cfg.Analysis.MaxComments
	}

	fetcher := youtube.NewFetcher(client, cfg.Analysis.PageDelay)
	comments, err := fetcher.FetchAll(ctx, videoID, max)
	if err != nil {
		log.Fatalf("Failed to fetch comments: %v", err)
	}

	analyzer := sentiment.NewAnalyzer(ctx, cfg)
	analyzed := analyzer.AnalyzeComments(ctx, comments)
	result := insights.BuildAnalysis(analyzed, insights.Options{
		TopKeywords: cfg.Analysis.TopKeywords,
		MaxIdeas:    cfg.Analysis.MaxIdeas,
	})

	stats, err := client.VideoStats(ctx, videoID)
	if err != nil {
		log.Printf("Warning: could not fetch video statistics: %v", err)
		stats = nil
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]interface{}{"video": stats, "analysis": result}); err != nil {
			log.Fatalf("Failed to encode analysis: %v", err)
		}
		return
	}

	printReport(stats, result)
}

func printReport(stats *models.VideoStatistics, result *models.AnalysisResult) {
	title := color.New(color.FgCyan, color.Bold)
	section := color.New(color.FgYellow, color.Bold)

	if stats != nil {
		title.Printf("\n%s\n", stats.Title)
		fmt.Printf("%s | %d views | %d likes | %d comments\n",
			stats.Channel, stats.Views, stats.Likes, stats.Comments)
	}

	section.Println("\nEngagement")
	fmt.Printf("  comments analyzed: %d\n", result.BasicStats.TotalComments)
	fmt.Printf("  total likes:       %d\n", result.BasicStats.TotalLikes)
	fmt.Printf("  total replies:     %d\n", result.BasicStats.TotalReplies)
	fmt.Printf("  engagement rate:   %.1f\n", result.BasicStats.EngagementRate)

	section.Println("\nSentiment")
	for _, slice := range result.SentimentData.Formatted {
		line := fmt.Sprintf("  %s %-8s %4d (%d%%)", slice.Emoji, slice.Name, slice.Value, slice.Percentage)
		switch slice.Name {
		case "Positive":
			color.Green(line)
		case "Negative":
			color.Red(line)
		default:
			fmt.Println(line)
		}
	}

	section.Println("\nTopics")
	for _, topic := range result.TopicData {
		fmt.Printf("  %-12s %d\n", topic.Name, topic.Value)
	}

	if len(result.Keywords) > 0 {
		section.Println("\nTop keywords")
		for i, kw := range result.Keywords {
			if i >= 10 {
				break
			}
			fmt.Printf("  %-16s %d\n", kw.Word, kw.Count)
		}
	}

	section.Println("\nContent ideas")
	for _, idea := range result.ContentIdeas {
		fmt.Printf("  - %s (%d likes)\n", idea.Idea, idea.Likes)
	}
	fmt.Println()
}
