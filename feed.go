package playerfolio

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Price feeds are JSON documents exported from the game's roster page. The
// default layout is
//
//	{"players": [{"name": "...", "priceUSD": 0.0123}, ...]}
//
// but exports vary, so the three paths are configurable jsonpath expressions:
// one selecting the list of items, and two evaluated against each item for
// the player name and the price.
const (
	DefaultFeedItemsPath = "$.players"
	DefaultFeedNamePath  = "$.name"
	DefaultFeedPricePath = "$.priceUSD"
)

// PriceQuote is one player price extracted from a feed.
type PriceQuote struct {
	Player string
	Price  float64
}

// DecodePriceFeed extracts player prices from a JSON feed. Empty paths take
// the defaults. Items missing a name or a price fail the decode: a silently
// half-read feed would merge stale prices.
func DecodePriceFeed(r io.Reader, itemsPath, namePath, pricePath string) ([]PriceQuote, error) {
	if itemsPath == "" {
		itemsPath = DefaultFeedItemsPath
	}
	if namePath == "" {
		namePath = DefaultFeedNamePath
	}
	if pricePath == "" {
		pricePath = DefaultFeedPricePath
	}

	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("%w: feed is not valid json: %v", ErrMalformedInput, err)
	}

	jval, err := jsonpath.Get(itemsPath, jobj)
	if err != nil {
		return nil, fmt.Errorf("%w: feed items path %q: %v", ErrMalformedInput, itemsPath, err)
	}
	jitems, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: feed items path %q does not select a list", ErrMalformedInput, itemsPath)
	}

	quotes := make([]PriceQuote, 0, len(jitems))
	for i, jitem := range jitems {
		name, err := feedString(jitem, namePath)
		if err != nil {
			return nil, fmt.Errorf("%w: feed item %d: %v", ErrMalformedInput, i, err)
		}
		price, err := feedFloat(jitem, pricePath)
		if err != nil {
			return nil, fmt.Errorf("%w: feed item %d (%s): %v", ErrMalformedInput, i, name, err)
		}
		quotes = append(quotes, PriceQuote{Player: name, Price: price})
	}
	return quotes, nil
}

// feedString evaluates a jsonpath against an item and expects a string.
func feedString(jitem any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jitem)
	if err != nil {
		return "", fmt.Errorf("path %q: %v", path, err)
	}
	jval = firstOf(jval)
	s, ok := jval.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("path %q is not a non-empty string: %v", path, jval)
	}
	return s, nil
}

// feedFloat evaluates a jsonpath against an item and expects a number.
// Some exports quote their numbers, so a parseable string is accepted too.
func feedFloat(jitem any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jitem)
	if err != nil {
		return 0, fmt.Errorf("path %q: %v", path, err)
	}
	jval = firstOf(jval)
	if val, ok := jval.(float64); ok {
		return val, nil
	}
	sval, ok := jval.(string)
	if !ok {
		return 0, fmt.Errorf("path %q is neither a number nor a string: %v", path, jval)
	}
	sval = strings.ReplaceAll(sval, ",", ".")
	sval = strings.ReplaceAll(sval, " ", "")
	val, err := strconv.ParseFloat(sval, 64)
	if err != nil {
		return 0, fmt.Errorf("path %q holds an invalid number %q: %v", path, sval, err)
	}
	return val, nil
}

// firstOf unwraps the list-of-one answers jsonpath sometimes returns.
func firstOf(jval any) any {
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		return jlist[0]
	}
	return jval
}

// ApplyPriceFeed records each quote on the book. Quotes for unknown players
// create empty positions, quotes can arrive before the first trade. It
// returns the number of prices recorded.
func (b *Book) ApplyPriceFeed(quotes []PriceQuote) (int, error) {
	n := 0
	for _, q := range quotes {
		if err := b.SetPrice(q.Player, M(q.Price, b.settings.BaseCurrency)); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
