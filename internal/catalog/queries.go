package catalog

import "github.com/leapstack-labs/edudash/pkg/core"

// Default returns the dashboard's 13 predefined queries.
// Statements use only portable SQL so they run unchanged on every adapter:
// rounding goes through the one-argument ROUND, which every store defines
// for floating point, and nullable sort keys put NULLs last explicitly.
func Default() *Catalog {
	c, err := New(defaultEntries...)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultEntries = []core.CatalogEntry{
	{
		Label: "1. Top 5 Adult Literacy Countries (2020)",
		Statement: `SELECT country, adult_literacy_rate__population_both_sexes AS adult_literacy
FROM literacy_rates
WHERE year = 2020
  AND adult_literacy_rate__population_both_sexes IS NOT NULL
ORDER BY adult_literacy DESC
LIMIT 5`,
	},
	{
		Label: "2. Countries where Female Youth Literacy < 80%",
		Statement: `SELECT country, year, youth_literacy_rate__population_15_24_years__female
FROM literacy_rates
WHERE youth_literacy_rate__population_15_24_years__female < 80
  AND youth_literacy_rate__population_15_24_years__female IS NOT NULL
ORDER BY youth_literacy_rate__population_15_24_years__female ASC`,
	},
	{
		Label: "3. Average Adult Literacy per Continent",
		Statement: `SELECT owid_region, ROUND(AVG(adult_literacy_rate__population_both_sexes) * 100) / 100 AS avg_adult_literacy
FROM literacy_rates
WHERE owid_region IS NOT NULL
  AND adult_literacy_rate__population_both_sexes IS NOT NULL
GROUP BY owid_region
ORDER BY avg_adult_literacy DESC`,
	},
	{
		Label: "4. Countries with Illiteracy % > 20% (2000)",
		Statement: `SELECT country, illiteracy_percent
FROM illiteracy_population
WHERE year = 2000
  AND illiteracy_percent > 20
ORDER BY illiteracy_percent DESC`,
	},
	{
		Label: "5. Trend of Illiteracy % for India (2000-2020)",
		Statement: `SELECT year, illiteracy_percent
FROM illiteracy_population
WHERE country = 'India'
  AND year BETWEEN 2000 AND 2020
ORDER BY year`,
	},
	{
		Label: "6. Top 10 countries with largest Illiterate population (last year)",
		Statement: `SELECT country, illiteracy_rate
FROM illiteracy_population
WHERE year = (SELECT MAX(year) FROM illiteracy_population)
ORDER BY CASE WHEN illiteracy_rate IS NULL THEN 1 ELSE 0 END, illiteracy_rate DESC
LIMIT 10`,
	},
	{
		Label: "7. Countries with Avg Years Schooling > 7 & GDP < 5000",
		Statement: `SELECT country, avg_years_schooling, gdp_per_capita
FROM gdp_schooling
WHERE avg_years_schooling > 7
  AND gdp_per_capita < 5000
ORDER BY avg_years_schooling DESC`,
	},
	{
		Label: "8. Rank countries by GDP per Schooling (2020)",
		Statement: `SELECT country, gdp_per_schooling_year
FROM gdp_schooling
WHERE year = 2020
  AND gdp_per_schooling_year IS NOT NULL
ORDER BY gdp_per_schooling_year DESC`,
	},
	{
		Label: "9. Global Average Schooling Years per Year",
		Statement: `SELECT year, ROUND(AVG(avg_years_schooling) * 100) / 100 AS global_avg_schooling
FROM gdp_schooling
WHERE avg_years_schooling IS NOT NULL
GROUP BY year
ORDER BY year`,
	},
	{
		Label: "10. Top 10 countries in 2020 with highest GDP per capita but lowest average schooling",
		Statement: `SELECT country, gdp_per_capita, avg_years_schooling
FROM gdp_schooling
WHERE year = 2020
  AND avg_years_schooling < 6
  AND gdp_per_capita IS NOT NULL
ORDER BY gdp_per_capita DESC
LIMIT 10`,
	},
	{
		Label: "11. Countries where the illiterate population is high despite more than 5 average years of schooling",
		Statement: `SELECT i.country, i.year, i.illiteracy_rate, g.avg_years_schooling
FROM illiteracy_population i
JOIN gdp_schooling g
  ON i.country = g.country
 AND i.year = g.year
WHERE g.avg_years_schooling > 5
  AND i.illiteracy_rate >= 15
ORDER BY i.illiteracy_rate DESC
LIMIT 10`,
	},
	{
		Label: "12. Compare Literacy Rates & GDP Growth for Zambia (last 20 years)",
		Statement: `SELECT l.year, l.adult_literacy_rate__population_both_sexes AS literacy_rate, g.gdp_per_capita
FROM literacy_rates l
JOIN gdp_schooling g
  ON l.country = g.country
 AND l.year = g.year
WHERE l.country = 'Zambia'
  AND l.year >= 2010
ORDER BY l.year`,
	},
	{
		Label: "13. Youth Literacy Male vs Female Gap (GDP > 30000, 2020)",
		Statement: `SELECT l.country,
       l.youth_literacy_rate__population_15_24_years__male AS male_literacy,
       l.youth_literacy_rate__population_15_24_years__female AS female_literacy,
       (l.youth_literacy_rate__population_15_24_years__male - l.youth_literacy_rate__population_15_24_years__female) AS gender_gap,
       g.gdp_per_capita
FROM literacy_rates l
JOIN gdp_schooling g
  ON l.country = g.country
 AND l.year = g.year
WHERE l.year = 2020
  AND g.gdp_per_capita > 30000
  AND l.youth_literacy_rate__population_15_24_years__male IS NOT NULL
  AND l.youth_literacy_rate__population_15_24_years__female IS NOT NULL
ORDER BY ABS(l.youth_literacy_rate__population_15_24_years__male - l.youth_literacy_rate__population_15_24_years__female) DESC`,
	},
}
