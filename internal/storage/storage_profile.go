package storage

// SetProfile stores (or overwrites) the profile for userID. Validation
// happens at the command layer; by the time a profile reaches storage it is
// accepted whole.
func (s *Storage) SetProfile(userID string, profile Profile) error {
	record, err := s.getOrCreateRecord()
	if err != nil {
		return err
	}

	record.Profiles[userID] = profile
	s.ds.Add(recordKey, record)
	return nil
}

// GetProfile returns the profile for userID, or false when unknown.
func (s *Storage) GetProfile(userID string) (*Profile, bool) {
	record, err := s.getOrCreateRecord()
	if err != nil {
		return nil, false
	}

	profile, exists := record.Profiles[userID]
	if !exists {
		return nil, false
	}
	return &profile, true
}

// DeleteProfile removes the profile for userID. Deleting an unknown user is
// a no-op.
func (s *Storage) DeleteProfile(userID string) error {
	record, err := s.getOrCreateRecord()
	if err != nil {
		return err
	}

	delete(record.Profiles, userID)
	s.ds.Add(recordKey, record)
	return nil
}
