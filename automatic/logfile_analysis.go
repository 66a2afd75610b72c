package automatic

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// AnalyzeLogFile reads a game log written by PlayGames and summarises it
// the same way PlayGames does.
func AnalyzeLogFile(filepath string) (string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	r := csv.NewReader(file)
	r.FieldsPerRecord = len(csvHeader)

	report := &Report{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if record[0] == csvHeader[0] {
			continue
		}
		res, err := parseRecord(record)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", report.Scores.Iterations()+2, err)
		}
		report.add(res)
	}
	return report.String(), nil
}

func parseRecord(record []string) (GameResult, error) {
	var res GameResult
	ints := []*int{&res.GameID, &res.Total, &res.Upper, &res.Lower}
	for i, dst := range ints {
		v, err := strconv.Atoi(record[i])
		if err != nil {
			return res, err
		}
		*dst = v
	}
	bonus, err := strconv.ParseBool(record[4])
	if err != nil {
		return res, err
	}
	res.Bonus = bonus
	res.Yahtzees, err = strconv.Atoi(record[5])
	return res, err
}
