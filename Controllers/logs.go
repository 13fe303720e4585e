package Controllers

import (
	"bufio"
	"encoding/json"
	"log"
	"os"
	"sort"
	"strconv"
	"time"

	"Taller/middleware"

	"github.com/gofiber/fiber/v2"
)

// LogGroup aggregates request log entries for one path
type LogGroup struct {
	Path        string               `json:"path"`
	Method      string               `json:"method"`
	Count       int                  `json:"count"`
	AvgLatency  float64              `json:"avg_latency_ms"`
	MaxLatency  float64              `json:"max_latency_ms"`
	SuccessRate float64              `json:"success_rate"`
	Logs        []middleware.LogData `json:"logs"`
}

// GetLogs returns request logs grouped by path, with optional filters
// GET /api/logs?method=POST&status=404&limit=500
func GetLogs(c *fiber.Ctx) error {
	methodFilter := c.Query("method", "")
	statusFilter := c.Query("status", "")
	limit, _ := strconv.Atoi(c.Query("limit", "500"))
	if limit < 1 || limit > 5000 {
		limit = 500
	}

	logs, err := readLogsFromFile("logs/requests.log", limit)
	if err != nil {
		log.Printf("Error reading logs: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read logs"})
	}

	filtered := logs[:0]
	for _, entry := range logs {
		if methodFilter != "" && entry.Method != methodFilter {
			continue
		}
		if statusFilter != "" && strconv.Itoa(entry.Status) != statusFilter {
			continue
		}
		filtered = append(filtered, entry)
	}

	groups := groupLogsByPath(filtered)
	return c.JSON(fiber.Map{
		"groups":       groups,
		"total_logs":   len(filtered),
		"total_groups": len(groups),
	})
}

// GetLogStats returns summary stats across the whole log file
// GET /api/logs/stats
func GetLogStats(c *fiber.Ctx) error {
	logs, err := readLogsFromFile("logs/requests.log", 0)
	if err != nil {
		log.Printf("Error reading logs: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read logs"})
	}

	var totalLatency time.Duration
	statusCounts := map[string]int{}
	for _, entry := range logs {
		totalLatency += entry.Latency
		switch {
		case entry.Status >= 500:
			statusCounts["5xx"]++
		case entry.Status >= 400:
			statusCounts["4xx"]++
		case entry.Status >= 300:
			statusCounts["3xx"]++
		default:
			statusCounts["2xx"]++
		}
	}

	avgLatency := 0.0
	if len(logs) > 0 {
		avgLatency = float64(totalLatency.Milliseconds()) / float64(len(logs))
	}

	return c.JSON(fiber.Map{
		"total_requests": len(logs),
		"avg_latency_ms": avgLatency,
		"status_counts":  statusCounts,
	})
}

// readLogsFromFile parses the JSON-line log file, newest entries last. A
// limit of 0 means read everything.
func readLogsFromFile(filePath string, limit int) ([]middleware.LogData, error) {
	file, err := os.Open(filePath)
	if os.IsNotExist(err) {
		return []middleware.LogData{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var logs []middleware.LogData
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var entry middleware.LogData
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			continue
		}
		logs = append(logs, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if limit > 0 && len(logs) > limit {
		logs = logs[len(logs)-limit:]
	}
	return logs, nil
}

// groupLogsByPath buckets entries per path+method with latency and success
// aggregates, busiest paths first.
func groupLogsByPath(logs []middleware.LogData) []LogGroup {
	byKey := map[string]*LogGroup{}
	for _, entry := range logs {
		key := entry.Method + " " + entry.Path
		group, ok := byKey[key]
		if !ok {
			group = &LogGroup{Path: entry.Path, Method: entry.Method}
			byKey[key] = group
		}
		group.Count++
		group.Logs = append(group.Logs, entry)
	}

	groups := make([]LogGroup, 0, len(byKey))
	for _, group := range byKey {
		var total float64
		successes := 0
		for _, entry := range group.Logs {
			ms := float64(entry.Latency.Milliseconds())
			total += ms
			if ms > group.MaxLatency {
				group.MaxLatency = ms
			}
			if entry.Status < 400 {
				successes++
			}
		}
		group.AvgLatency = total / float64(group.Count)
		group.SuccessRate = float64(successes) / float64(group.Count) * 100
		groups = append(groups, *group)
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Count > groups[j].Count })
	return groups
}
