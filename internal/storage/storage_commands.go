package storage

// AppendCommandToHistory appends a command execution record, truncating the
// history to the configured limit.
func (s *Storage) AppendCommandToHistory(rec CommandHistoryRecord) error {
	record, err := s.getOrCreateRecord()
	if err != nil {
		return err
	}

	record.CommandsHistoryList = append(record.CommandsHistoryList, rec)
	if len(record.CommandsHistoryList) > commandHistoryLimit {
		record.CommandsHistoryList = record.CommandsHistoryList[len(record.CommandsHistoryList)-commandHistoryLimit:]
	}
	s.ds.Add(recordKey, record)
	return nil
}

func (s *Storage) FetchCommandHistory() ([]CommandHistoryRecord, error) {
	record, err := s.getOrCreateRecord()
	if err != nil {
		return nil, err
	}
	return record.CommandsHistoryList, nil
}
