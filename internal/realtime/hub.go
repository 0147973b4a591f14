package realtime

import (
	"meme-market/utils"
)

// Topic names. Clients join the per-meme topic for bid/vote updates on a
// single meme, or the leaderboard topic for ranking-change signals.
const LeaderboardTopic = "leaderboard"

// MemeTopic returns the broadcast topic for a single meme
func MemeTopic(memeID string) string {
	return "meme_" + memeID
}

// Event names pushed to subscribers
const (
	EventBidPlaced         = "bid_placed"
	EventVoteUpdate        = "vote_update"
	EventLeaderboardUpdate = "leaderboard_update"
)

// Event is a single message published to a topic
type Event struct {
	Event   string `json:"event"`
	Topic   string `json:"topic"`
	Payload any    `json:"payload,omitempty"`
}

type subscription struct {
	client *Client
	topic  string
	join   bool
}

// Hub is the topic registry and fan-out loop. All subscriber state is
// owned by the Run goroutine; publishes from any goroutine are funneled
// through the broadcast channel, which gives per-topic publish ordering.
// Delivery is at-most-once: there is no replay queue, and a client whose
// send buffer is full is dropped.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	subscribe  chan subscription
	broadcast  chan Event

	topics  map[string]map[*Client]bool
	clients map[*Client]map[string]bool
}

// NewHub creates a hub with no subscribers
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		subscribe:  make(chan subscription),
		broadcast:  make(chan Event, 256),
		topics:     make(map[string]map[*Client]bool),
		clients:    make(map[*Client]map[string]bool),
	}
}

// Publish queues an event for delivery to the topic's current
// subscribers. It never blocks the caller: when the hub is saturated the
// event is dropped, and subscribers recover by re-fetching state.
func (h *Hub) Publish(topic, event string, payload any) {
	select {
	case h.broadcast <- Event{Event: event, Topic: topic, Payload: payload}:
	default:
		utils.Warn("realtime: broadcast queue full, event dropped", map[string]any{
			"topic": topic,
			"event": event,
		})
	}
}

// Run processes registrations, topic membership changes and broadcasts.
// Call it in its own goroutine before serving connections.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = make(map[string]bool)

		case client := <-h.unregister:
			h.drop(client)

		case sub := <-h.subscribe:
			joined, ok := h.clients[sub.client]
			if !ok {
				continue // already dropped
			}
			if sub.join {
				joined[sub.topic] = true
				if h.topics[sub.topic] == nil {
					h.topics[sub.topic] = make(map[*Client]bool)
				}
				h.topics[sub.topic][sub.client] = true
			} else {
				delete(joined, sub.topic)
				h.removeFromTopic(sub.client, sub.topic)
			}

		case event := <-h.broadcast:
			for client := range h.topics[event.Topic] {
				select {
				case client.send <- event:
				default:
					// slow consumer: drop the client rather than block the topic
					h.drop(client)
				}
			}
		}
	}
}

func (h *Hub) drop(client *Client) {
	joined, ok := h.clients[client]
	if !ok {
		return
	}
	for topic := range joined {
		h.removeFromTopic(client, topic)
	}
	delete(h.clients, client)
	close(client.send)
}

func (h *Hub) removeFromTopic(client *Client, topic string) {
	subs := h.topics[topic]
	if subs == nil {
		return
	}
	delete(subs, client)
	if len(subs) == 0 {
		delete(h.topics, topic)
	}
}
