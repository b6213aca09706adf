package mysql

// Position order is the catalog order; the selector's stable tie-break
// depends on it, so the ORDER BY is load-bearing.
const listHotelsSQL = `
SELECT
  name,
  rating,
  weekday_regular,
  weekday_rewards,
  weekend_regular,
  weekend_rewards
FROM hotels
ORDER BY position
`
