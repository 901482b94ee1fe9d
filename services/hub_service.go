package services

import (
	"encoding/json"
	"log"

	"siteapi/models"
)

// HubService owns the shared realtime hub. One instance per process; safe
// for concurrent use because all client bookkeeping goes through the run
// loop's channels.
type HubService struct {
	hub *models.Hub
}

func NewHubService() *HubService {
	hub := models.NewHub()
	service := &HubService{hub: hub}

	go service.Run()

	return service
}

func (h *HubService) GetHub() *models.Hub {
	return h.hub
}

func (h *HubService) Run() {
	for {
		select {
		case client := <-h.hub.Register:
			h.hub.Clients[client] = true
			log.Printf("Client registered: %s (%s)", client.ID, client.Username)

		case client := <-h.hub.Unregister:
			if _, ok := h.hub.Clients[client]; ok {
				delete(h.hub.Clients, client)
				close(client.Send)
				log.Printf("Client unregistered: %s (%s)", client.ID, client.Username)
			}

		case message := <-h.hub.Broadcast:
			for client := range h.hub.Clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.hub.Clients, client)
				}
			}
		}
	}
}

// BroadcastEvent pushes a typed event to every connected client.
func (h *HubService) BroadcastEvent(eventType string, data interface{}) {
	wsMessage := models.WSMessage{
		Type: eventType,
		Data: data,
	}

	messageBytes, err := json.Marshal(wsMessage)
	if err != nil {
		log.Printf("Error marshaling WebSocket message: %v", err)
		return
	}

	h.hub.Broadcast <- messageBytes
}
