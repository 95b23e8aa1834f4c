package wiki

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

// FeaturedArticleURL reads the "Today's featured article" feed and returns the
// URL of the article its newest entry is about.
func (c *Client) FeaturedArticleURL(ctx context.Context) (string, error) {
	feedURL := c.baseURL + featuredFeedPath

	parsed, err := c.feedParser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return "", fmt.Errorf("parse feed (URL = %s): %w", feedURL, err)
	}

	item := newestItem(parsed.Items)
	if item == nil {
		return "", errors.New("featured feed has no entries")
	}

	articleURL, err := c.resolveFeaturedLink(item)
	if err != nil {
		return "", fmt.Errorf("resolve featured link: %w", err)
	}

	c.log.DebugContext(ctx, "Featured article is resolved",
		"feedURL", feedURL,
		"entryTitle", item.Title,
		"articleURL", articleURL)

	return articleURL, nil
}

func newestItem(items []*gofeed.Item) *gofeed.Item {
	var newest *gofeed.Item
	var newestTime time.Time

	for _, item := range items {
		if item == nil {
			continue
		}

		t := itemTime(item)
		if newest == nil || !t.Before(newestTime) {
			newest, newestTime = item, t
		}
	}

	return newest
}

func itemTime(item *gofeed.Item) time.Time {
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}

	return time.Time{}
}

// The blurb of a featured entry opens with the bolded article link.
func (c *Client) resolveFeaturedLink(item *gofeed.Item) (string, error) {
	body := item.Description
	if strings.TrimSpace(body) == "" {
		body = item.Content
	}

	if strings.TrimSpace(body) != "" {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("create document from reader: %w", err)
		}

		link := doc.Find("b a[href]").First()
		if link.Length() == 0 {
			link = doc.Find(`a[href*="/wiki/"]`).First()
		}

		if href, ok := link.Attr("href"); ok {
			return c.absoluteURL(href)
		}
	}

	if link := strings.TrimSpace(item.Link); link != "" {
		return c.absoluteURL(link)
	}

	return "", errors.New("entry has no article link")
}

func (c *Client) absoluteURL(href string) (string, error) {
	base, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}

	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", fmt.Errorf("parse href: %w", err)
	}

	return base.ResolveReference(ref).String(), nil
}
