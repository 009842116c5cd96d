package exchange

// mapResult translates an index based assignment into the caller's identifiers
func mapResult[ID comparable](assignment []int, ids []ID) map[ID]ID {
	result := make(map[ID]ID, len(assignment))
	for giver, receiver := range assignment {
		result[ids[giver]] = ids[receiver]
	}
	return result
}
