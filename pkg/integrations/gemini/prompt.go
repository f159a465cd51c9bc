package gemini

import "fmt"

// planPrompt instructs the model to answer with a single JSON object in
// the shape the plan package decodes. Non-overlap and fitting within the
// overall dimensions are instructions to the model, not invariants the
// renderer checks.
const planPrompt = `You are an expert architectural designer.
Based on the following user request, generate a simple 2D rectangular floor plan.
The output must be a single JSON object.

USER REQUEST: %s

Include the overall dimensions of the house (length and breadth) and a list of rooms.
For each room, provide its name, its type (e.g., 'bedroom', 'living_room', 'bathroom', 'kitchen', 'hallway', 'door'),
and its position (x, y coordinates from top-left, in feet) and size (width, height, in feet).
Ensure rooms do not overlap and fit within the overall house dimensions.
Include doorways between rooms where logical, representing them as small rectangles of type 'door'.
Ensure the layout is functional and aesthetically pleasing for a typical house.

RESPONSE STRUCTURE EXAMPLE:
{
  "dimensions": {"length": 60, "breadth": 20},
  "rooms": [
    {"name": "Living Room", "type": "living_room", "x": 0, "y": 0, "width": 25, "height": 20},
    {"name": "Kitchen", "type": "kitchen", "x": 25, "y": 0, "width": 15, "height": 20},
    {"name": "Bedroom 1", "type": "bedroom", "x": 0, "y": 20, "width": 20, "height": 10},
    {"name": "Bathroom 1", "type": "bathroom", "x": 20, "y": 20, "width": 10, "height": 10},
    {"name": "Doorway", "type": "door", "x": 24, "y": 0, "width": 2, "height": 1}
  ]
}
Ensure the 'dimensions' in the JSON are consistent with the overall area or given dimensions in the user's request.
Respond ONLY with the JSON object, without commentary or markdown.`

// BuildPrompt renders the generation prompt for a house description.
func BuildPrompt(description string) string {
	return fmt.Sprintf(planPrompt, description)
}
