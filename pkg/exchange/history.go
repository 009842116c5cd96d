package exchange

// absent stands for a historical receiver who is not part of the current exchange.
// It never matches a participant index, though it still occupies one unit of history depth.
const absent = -1

// buildExclusions returns, for every giver index, the receivers the giver must not be assigned to,
// most recent (first scanned) first.
//
// Records are scanned in the given order until every giver has gathered historyLimit entries or the
// records run out. When participationRequired is set a record in which a giver did not take part
// still consumes one unit of that giver's depth (stored as absent), otherwise only the records the
// giver appears in count.
func buildExclusions[ID comparable](ids []ID, history []map[ID]ID, historyLimit int, participationRequired bool) [][]int {
	exclusions := make([][]int, len(ids))
	for giver := range exclusions {
		exclusions[giver] = make([]int, 0, max(historyLimit, 0))
	}

	if historyLimit <= 0 {
		return exclusions
	}

	lookup := indices(ids)
	pending := len(ids) // Givers that still need history

	for _, record := range history {
		if pending == 0 {
			break
		}

		for giver, id := range ids {
			// Skip givers whose history is already saturated
			if len(exclusions[giver]) >= historyLimit {
				continue
			}

			if receiverId, ok := record[id]; ok {
				receiver, found := lookup[receiverId]
				if !found {
					receiver = absent
				}
				exclusions[giver] = append(exclusions[giver], receiver)
			} else if participationRequired {
				exclusions[giver] = append(exclusions[giver], absent)
			} else {
				continue
			}

			if len(exclusions[giver]) >= historyLimit {
				pending--
			}
		}
	}

	return exclusions
}
